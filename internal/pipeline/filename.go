package pipeline

import (
	"strings"
	"time"

	"github.com/jonathan/consent-generator/internal/docx"
)

// ArchiveExtension is the extension of the generated archive
const ArchiveExtension = ".zip"

// DefaultArchivePrefix names the archive ("consents")
const DefaultArchivePrefix = "согласия"

var unsafeFileChars = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

// SanitizeFileName replaces characters that are not allowed in file names with underscores.
// Every other character is kept, so the length in runes is unchanged.
func SanitizeFileName(name string) string {
	return unsafeFileChars.Replace(name)
}

// DocumentName is the archive entry name for a participant
func DocumentName(fullName string) string {
	return SanitizeFileName(fullName) + docx.Extension
}

// ArchiveName embeds the generation time so repeated runs do not collide
func ArchiveName(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultArchivePrefix
	}
	return prefix + "_" + now.Format("20060102_150405") + ArchiveExtension
}
