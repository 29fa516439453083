// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ZipNotFoundId Id = iota + 1
	IncompleteInputId
	DescriptionTagsMissingId
	ArchiveToolFailedId
	ConfigLoadFailedId
	RegistrationUnsupportedId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the guide followed by a "See also" list when the issue has
// external links.
func (i *Issue) Markdown() string {
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		sb.WriteString("\n\n## See also\n")
		for _, link := range i.extLinks {
			sb.WriteString("\n- <")
			sb.WriteString(string(link))
			sb.WriteString(">")
		}
	}
	return sb.String()
}

// Render renders the guide with glamour using the given style name or path
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	zipNotFoundIssue = &Issue{
		id: ZipNotFoundId,
		mdMsg: `
# zip executable not found!

vlp hands compression to the Info-ZIP ` + "`zip`" + ` tool and could not find it.

## Search order:
1. ` + "`zip_path`" + ` from the config file or ` + "`--zip`" + `
2. A ` + "`zip`" + ` binary next to the vlp executable
3. Your PATH

## Things you can try:
- Install zip:
~~~
$ sudo apt install zip
~~~

- On Windows, copy ` + "`zip.exe`" + ` next to ` + "`vlp.exe`" + `
- Point vlp at an existing binary:
~~~cue
zip_path: "/opt/zip/bin/zip"
~~~`,
		extLinks: []HttpLink{"https://infozip.sourceforge.net/Zip.html"},
	}

	incompleteInputIssue = &Issue{
		id: IncompleteInputId,
		mdMsg: `
# Not a lockscreen package!

The input directory is missing something a lockscreen package needs.

## Expected layout:
~~~
<input>/
├── description.xml
├── preview/
└── lockscreen/
    └── manifest.xml
~~~

## Things you can try:
- Pass the package root, not one of its subdirectories
- Restore the missing entry named in the error above`,
	}

	descriptionTagsMissingIssue = &Issue{
		id: DescriptionTagsMissingId,
		mdMsg: `
# description.xml could not be stamped!

vlp writes the generated version into the first ` + "`<id>`" + ` element and the
first Chinese title of description.xml. One of them is missing.

## The file must contain:
~~~xml
<id>...</id>
<title locale="zh_CN"><![CDATA[...]]></title>
~~~

## Things you can try:
- Add the missing element; its current value does not matter
- Make sure the title uses a CDATA section`,
	}

	archiveToolFailedIssue = &Issue{
		id: ArchiveToolFailedId,
		mdMsg: `
# zip reported an error!

The external zip tool exited with a failure status while building an archive.
Its output is shown above.

## Things you can try:
- Check that the output directory is writable and has free space
- Re-run with ` + "`-v`" + ` to log every zip invocation
- Check that your zip build supports ` + "`-r`",
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded!

## Things you can try:
- Show the file vlp reads:
~~~
$ vlp config path
~~~

- Write a fresh default file somewhere else and compare:
~~~
$ vlp config init --config /tmp/vlp.cue
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	registrationUnsupportedIssue = &Issue{
		id: RegistrationUnsupportedId,
		mdMsg: `
# Shell registration is Windows only!

` + "`vlp register`" + ` adds an Explorer right-click entry for folders. Other
platforms have no equivalent that vlp manages.

## Things you can try:
- Run vlp from a terminal:
~~~
$ vlp pack ./my-theme
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

## Things you can try:
- Choose an output directory you own with ` + "`-o`" + `
- On Windows, run ` + "`vlp register`" + ` from an elevated prompt`,
	}

	issues = map[Id]*Issue{
		zipNotFoundIssue.Id():             zipNotFoundIssue,
		incompleteInputIssue.Id():         incompleteInputIssue,
		descriptionTagsMissingIssue.Id():  descriptionTagsMissingIssue,
		archiveToolFailedIssue.Id():       archiveToolFailedIssue,
		configLoadFailedIssue.Id():        configLoadFailedIssue,
		registrationUnsupportedIssue.Id(): registrationUnsupportedIssue,
		permissionDeniedIssue.Id():        permissionDeniedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, v := range maps.Values(issues) {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
