package materialize

import "strings"

// folderNameReplacer maps characters that are not allowed in folder names
var folderNameReplacer = strings.NewReplacer(
	`\`, "-",
	"/", "-",
	":", "-",
	"*", "_",
	"<", "_",
	">", "_",
	"|", "_",
	`"`, "_",
)

// SanitizeFolderName replaces characters that cannot appear in a folder name.
// Applying it twice gives the same result as applying it once.
func SanitizeFolderName(name string) string {
	return folderNameReplacer.Replace(name)
}
