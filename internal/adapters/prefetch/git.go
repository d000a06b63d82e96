// Package prefetch resolves git revisions to content hashes by shelling out
// to nix-prefetch-git.
package prefetch

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"go.trai.ch/yarnix/internal/core/domain"
	"go.trai.ch/yarnix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommitResolver = (*GitResolver)(nil)

// GitResolver implements ports.CommitResolver using the nix-prefetch-git CLI.
type GitResolver struct {
	tool string
}

// New creates a resolver invoking nix-prefetch-git from PATH.
func New() *GitResolver {
	return &GitResolver{tool: "nix-prefetch-git"}
}

// NewWithTool creates a resolver invoking the given executable. Used by tests
// to substitute a stub for the real tool.
func NewWithTool(tool string) *GitResolver {
	return &GitResolver{tool: tool}
}

// prefetchOutput is the structured output of nix-prefetch-git.
type prefetchOutput struct {
	URL    string `json:"url"`
	Rev    string `json:"rev"`
	Sha256 string `json:"sha256"`
}

// ResolveSHA256 runs the tool for the given repository and revision and
// returns the sha256 of the fetched tree from its JSON output.
func (r *GitResolver) ResolveSHA256(ctx context.Context, repoURL, rev string) (string, error) {
	//nolint:gosec // repoURL and rev come from the user's own lockfile
	cmd := exec.CommandContext(ctx, r.tool, "--url", repoURL, "--rev", rev)

	output, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		toolErr := zerr.Wrap(err, domain.ErrPrefetchFailed.Error())
		toolErr = zerr.With(toolErr, "url", repoURL)
		toolErr = zerr.With(toolErr, "rev", rev)
		return "", zerr.With(toolErr, "stderr", stderr)
	}

	return ParseOutput(output, repoURL, rev)
}

// ParseOutput extracts the sha256 from nix-prefetch-git's JSON output.
func ParseOutput(output []byte, repoURL, rev string) (string, error) {
	var result prefetchOutput
	if err := json.Unmarshal(output, &result); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrPrefetchFailed.Error())
		parseErr = zerr.With(parseErr, "url", repoURL)
		return "", zerr.With(parseErr, "output", string(output))
	}

	if result.Sha256 == "" {
		emptyErr := zerr.With(domain.ErrPrefetchFailed, "url", repoURL)
		emptyErr = zerr.With(emptyErr, "rev", rev)
		return "", zerr.With(emptyErr, "reason", "no sha256 in tool output")
	}

	return result.Sha256, nil
}
