//go:build windows

package notify

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func messageBoxIcon(severity Severity) uint32 {
	switch severity {
	case SeverityWarning:
		return windows.MB_ICONWARNING
	case SeverityError:
		return windows.MB_ICONERROR
	case SeverityStop:
		return windows.MB_ICONSTOP
	default:
		return windows.MB_ICONINFORMATION
	}
}

// showDialog opens a Win32 message box owned by no window
func showDialog(title, message string, severity Severity) error {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("encoding caption: %w", err)
	}

	if _, err := windows.MessageBox(0, text, caption, windows.MB_OK|messageBoxIcon(severity)); err != nil {
		return fmt.Errorf("MessageBox: %w", err)
	}
	return nil
}
