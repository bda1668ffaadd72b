package dto

type DecisionOutput struct {
	Allowed    bool
	Category   string
	Suggestion string
}

type DoctorResult struct {
	Name            string
	Version         string
	BinaryReachable bool
	ChecksumValid   bool
	LifecycleOK     bool
	Error           string
}
