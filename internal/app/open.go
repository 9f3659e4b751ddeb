package app

import (
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// openURL opens the URL with the platform's default handler. For the
// download endpoint that hands the original file to the browser, which
// saves or displays it.
func openURL(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("cmd", "/c", "start", url)
		case "linux":
			cmd = exec.Command("xdg-open", url)
		default:
			return ToastMsg{Message: "download: " + url, Duration: 4 * time.Second}
		}
		if err := cmd.Start(); err != nil {
			return ToastMsg{Message: "open failed: " + err.Error(), Duration: 4 * time.Second, IsError: true}
		}
		return ToastMsg{Message: "opening download", Duration: 2 * time.Second}
	}
}
