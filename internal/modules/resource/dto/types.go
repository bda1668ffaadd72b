package dto

type SearchInput struct {
	Subject      string
	ResourceType string
	Limit        int
}

type SearchOutput struct {
	Resources []ResourceOutput
	Feedback  string
}

type ResourceOutput struct {
	Title           string
	Description     string
	ResourceType    string
	Difficulty      string
	URL             string
	SimilarityScore float64
	Tags            []string
}
