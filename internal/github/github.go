// Package github provides access to the GitHub API for this app's releases.
package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-version"
)

var ErrHttpError = errors.New("HTTP error")

// VersionInfo describes the installed and the latest published version of the app.
type VersionInfo struct {
	Local         string
	Remote        string
	Latest        string
	IsRemoteNewer bool
}

// AvailableUpdate reports whether there is a newer version of this app available on GitHub.
func AvailableUpdate(owner, repo, current string) (VersionInfo, error) {
	return availableUpdate(owner, repo, current, fetchGitHubLatest)
}

func availableUpdate(owner, repo, local string, fetch func(owner, repo string) (string, error)) (VersionInfo, error) {
	remote, err := fetch(owner, repo)
	if err != nil {
		return VersionInfo{}, err
	}
	localV, err := version.NewVersion(local)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("parse local version %q: %w", local, err)
	}
	remoteV, err := version.NewVersion(remote)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("parse remote version %q: %w", remote, err)
	}
	v := VersionInfo{Local: localV.String(), Remote: remoteV.String()}
	if remoteV.GreaterThan(localV) {
		v.Latest = remoteV.String()
		v.IsRemoteNewer = true
	} else {
		v.Latest = localV.String()
	}
	return v, nil
}

// fetchGitHubLatest returns the tag name of the repo's latest release.
// It returns an empty string when the response carries no tag name.
func fetchGitHubLatest(owner, repo string) (string, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
	r, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer r.Body.Close()
	if r.StatusCode >= 400 {
		return "", fmt.Errorf("%s: %w", r.Status, ErrHttpError)
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(data, &release); err != nil {
		return "", err
	}
	return release.TagName, nil
}
