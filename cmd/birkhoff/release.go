package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

var (
	versionFile string

	releaseCmd = &cobra.Command{
		Use:       "release [major|minor|patch]",
		Short:     "Tag the current version and bump to the next development version",
		Long:      `Strips the -dev suffix from the Version constant, verifies the git tree is clean and the tag unused, commits and tags the release, then bumps the named part (default patch) and commits the next -dev version.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"major", "minor", "patch"},
		RunE: func(cmd *cobra.Command, args []string) error {
			part := "patch"
			if len(args) == 1 {
				part = args[0]
			}
			return runRelease(cmd.OutOrStdout(), part)
		},
	}
)

// versionPattern matches the Version constant assignment in version.go.
var versionPattern = regexp.MustCompile(`(Version = ")([^"]+)(")`)

// runRelease performs the release sequence against the git repository in
// the current working directory.
func runRelease(w io.Writer, part string) error {
	version, err := getVersion(versionFile)
	if err != nil {
		return err
	}
	version = strings.TrimSuffix(version, "-dev")
	tag := "v" + version

	fmt.Fprintf(w, "Releasing %s\n", version)
	tagged, err := gitTags()
	if err != nil {
		return err
	}
	if tagged[tag] {
		return xerrors.Errorf("release: version %s is already tagged", version)
	}
	clean, err := gitIsClean()
	if err != nil {
		return err
	}
	if !clean {
		return xerrors.New("release: you have uncommitted changes in git")
	}

	// Pin the release version, commit, and tag it.
	if err = setVersion(versionFile, version); err != nil {
		return err
	}
	if err = gitCommit("Bump version number to " + version); err != nil {
		return err
	}
	if err = gitTag(tag, "Released version "+version); err != nil {
		return err
	}

	// Move on to the next development version.
	next, err := bumpVersion(version, part)
	if err != nil {
		return err
	}
	next += "-dev"
	if err = setVersion(versionFile, next); err != nil {
		return err
	}
	if err = gitCommit("Set development version number to " + next); err != nil {
		return err
	}
	fmt.Fprintf(w, "Tagged %s, now at %s\n", tag, next)

	return nil
}

// bumpVersion increments the named part of a semantic version string and
// zeroes the parts after it: patch 2.7.1→2.7.2, minor 2.7.1→2.8.0,
// major 2.7.1→3.0.0.
func bumpVersion(version, part string) (string, error) {
	index, ok := map[string]int{"major": 0, "minor": 1, "patch": 2}[part]
	if !ok {
		return "", xerrors.Errorf("release: unknown version part %q", part)
	}
	fields := strings.Split(version, ".")
	if len(fields) != 3 {
		return "", xerrors.Errorf("release: %q is not a semantic version", version)
	}
	parts := make([]int, 3)
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return "", xerrors.Errorf("release: %q is not numeric: %w", version, err)
		}
		parts[i] = n
	}
	parts[index]++
	for i := index + 1; i < 3; i++ {
		parts[i] = 0
	}

	return fmt.Sprintf("%d.%d.%d", parts[0], parts[1], parts[2]), nil
}

// getVersion extracts the Version constant from filename.
func getVersion(filename string) (string, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return "", xerrors.Errorf("release: read version file: %w", err)
	}
	match := versionPattern.FindSubmatch(contents)
	if match == nil {
		return "", xerrors.Errorf("release: could not find Version in %s", filename)
	}

	return string(match[2]), nil
}

// setVersion rewrites the Version constant in filename.
func setVersion(filename, version string) error {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return xerrors.Errorf("release: read version file: %w", err)
	}
	if !versionPattern.Match(contents) {
		return xerrors.Errorf("release: could not find Version in %s", filename)
	}
	updated := versionPattern.ReplaceAll(contents, []byte("${1}"+version+"${3}"))
	if err = os.WriteFile(filename, updated, 0o644); err != nil {
		return xerrors.Errorf("release: write version file: %w", err)
	}

	return nil
}

// gitTags returns the set of existing git tags.
func gitTags() (map[string]bool, error) {
	out, err := exec.Command("git", "tag").Output()
	if err != nil {
		return nil, xerrors.Errorf("release: git tag: %w", err)
	}
	tags := make(map[string]bool)
	for _, tag := range strings.Fields(string(out)) {
		tags[tag] = true
	}

	return tags, nil
}

// gitIsClean reports whether there are no uncommitted changes.
func gitIsClean() (bool, error) {
	err := exec.Command("git", "diff", "--quiet").Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if xerrors.As(err, &exitErr) {
		return false, nil
	}

	return false, xerrors.Errorf("release: git diff: %w", err)
}

// gitCommit commits all changed files with the given message.
func gitCommit(message string) error {
	if err := exec.Command("git", "commit", "-am", message).Run(); err != nil {
		return xerrors.Errorf("release: git commit: %w", err)
	}

	return nil
}

// gitTag creates an annotated tag for the current commit.
func gitTag(tag, message string) error {
	if err := exec.Command("git", "tag", "-a", "-m", message, tag).Run(); err != nil {
		return xerrors.Errorf("release: git tag %s: %w", tag, err)
	}

	return nil
}
