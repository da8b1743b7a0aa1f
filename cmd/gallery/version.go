package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "gallery %s\ncommit: %s\n", canonicalVersion(version), commit)
			return nil
		},
	}
}

// canonicalVersion normalises a build version to vMAJOR.MINOR.PATCH form,
// keeping any prerelease. Unparseable versions are reported as-is.
func canonicalVersion(v string) string {
	sv := v
	if !strings.HasPrefix(sv, "v") {
		sv = "v" + sv
	}
	if !semver.IsValid(sv) {
		return v
	}
	return semver.Canonical(sv)
}
