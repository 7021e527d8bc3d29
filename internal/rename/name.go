package rename

import (
	"path/filepath"
	"strings"

	"flagren/pkg/types"
)

// SplitName splits a file name into its base name and extension. The
// extension keeps its leading dot and is empty when there is none. A name
// whose only dot is the leading one (".bashrc") has no extension.
func SplitName(name string) (base, ext string) {
	if name == "." || name == ".." {
		return name, ""
	}
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// BuildName joins base and flag with an underscore, flag first for Prefix.
func BuildName(base, flag string, pos types.Position) string {
	if pos == types.Prefix {
		return flag + "_" + base
	}
	return base + "_" + flag
}

// TargetPath computes where sourcePath is renamed to. The extension always
// comes from the original name; dots in replacement are part of the base.
func TargetPath(sourcePath, replacement string, settings types.FlagSettings) string {
	dir, name := filepath.Split(sourcePath)
	base, ext := SplitName(name)
	if replacement != "" {
		base = replacement
	}
	return dir + BuildName(base, settings.Flag, settings.Position) + ext
}
