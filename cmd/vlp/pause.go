// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"fmt"
	"io"
)

const pausePrompt = "按回车键退出..."

// pause keeps a console window opened by Explorer alive until the user
// presses Enter. End of input also releases it.
func pause(in io.Reader, out io.Writer) {
	fmt.Fprint(out, SubtitleStyle.Render(pausePrompt))
	_, _ = bufio.NewReader(in).ReadString('\n')
	fmt.Fprintln(out)
}
