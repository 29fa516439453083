// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       Id
		contains string
	}{
		{ZipNotFoundId, "zip executable not found"},
		{IncompleteInputId, "manifest.xml"},
		{DescriptionTagsMissingId, `locale="zh_CN"`},
		{ArchiveToolFailedId, "zip reported an error"},
		{ConfigLoadFailedId, "vlp config path"},
		{RegistrationUnsupportedId, "Windows only"},
		{PermissionDeniedId, "Permission denied"},
	}

	for _, tt := range tests {
		iss := Get(tt.id)
		if iss == nil {
			t.Errorf("Get(%d) returned nil", tt.id)
			continue
		}
		if iss.Id() != tt.id {
			t.Errorf("Get(%d).Id() = %d", tt.id, iss.Id())
		}
		if !strings.Contains(string(iss.MarkdownMsg()), tt.contains) {
			t.Errorf("Get(%d) message does not contain %q", tt.id, tt.contains)
		}
	}

	if Get(Id(999)) != nil {
		t.Error("Get() of an unknown id should return nil")
	}
}

func TestValuesOrdered(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i, iss := range values {
		if iss.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, iss.Id(), i+1)
		}
	}
}

func TestIssue_Markdown(t *testing.T) {
	t.Parallel()

	withLinks := Get(ZipNotFoundId).Markdown()
	if !strings.Contains(withLinks, "## See also") || !strings.Contains(withLinks, "- <https://") {
		t.Errorf("Markdown() missing link list:\n%s", withLinks)
	}

	noLinks := Get(IncompleteInputId).Markdown()
	if strings.Contains(noLinks, "See also") {
		t.Errorf("Markdown() without links should have no See also section:\n%s", noLinks)
	}
}

func TestIssue_ExtLinksClone(t *testing.T) {
	t.Parallel()

	iss := Get(ZipNotFoundId)
	links := iss.ExtLinks()
	links[0] = "modified"
	if iss.ExtLinks()[0] == "modified" {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	t.Parallel()

	for _, iss := range Values() {
		out, err := iss.Render("notty")
		if err != nil {
			t.Errorf("Render() of issue %d failed: %v", iss.Id(), err)
			continue
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("Render() of issue %d is empty", iss.Id())
		}
	}
}
