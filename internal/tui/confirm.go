// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

func renderConfirmDelete(label string) string {
	content := "Delete \"" + label + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
