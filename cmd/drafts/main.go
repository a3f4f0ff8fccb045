// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command drafts manages the story drafts of an account from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-story-drafts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	if err := newRootCmd(info).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
