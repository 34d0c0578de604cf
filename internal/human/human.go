// Package human formats counts and byte sizes for reports and CLI output.
package human

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Count formats n with thousands separators: 16384 -> "16,384".
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Bytes formats a byte count with a binary unit suffix, keeping one decimal
// for non-integral values: 4096 -> "4.0 KiB", 67108864 -> "64.0 MiB".
func Bytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return printer.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Pages formats a page count together with its byte size:
// "512 pages (2.0 MiB)".
func Pages(pages, pageSize int) string {
	return printer.Sprintf("%d pages (%s)", pages, Bytes(int64(pages)*int64(pageSize)))
}
