// Command reference is an example moderation classifier plugin. It applies
// the same denylist as the built-in keyword filter, so hosts can swap it in
// without changing behavior and use it as a template for real classifiers.
package main

import (
	"context"

	"github.com/hashicorp/go-plugin"

	moderationrpc "studyhub/internal/modules/moderation/adapter/out/rpc"
	"studyhub/internal/modules/moderation/domain"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *moderationrpc.Empty) (*moderationrpc.Metadata, error) {
	return &moderationrpc.Metadata{
		Name:    "reference",
		Version: "1.0.0",
	}, nil
}

func (s *server) Classify(_ context.Context, in *moderationrpc.ClassifyRequest) (*moderationrpc.ClassifyResponse, error) {
	decision := domain.ClassifyKeywords(in.Text)
	return &moderationrpc.ClassifyResponse{
		Allowed:    decision.Allowed,
		Category:   decision.Category,
		Matched:    decision.Matched,
		Suggestion: decision.Suggestion,
	}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: moderationrpc.HandshakeConfig,
		Plugins:         moderationrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
