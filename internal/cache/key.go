package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strconv"

	"github.com/agentic-research/skim/internal/safety"
)

// key computes the hex-encoded cache key for a (path, mtimeNS, mode) triple
// per spec.md §3: hex(SHA-256(abs_path ‖ "|" ‖ decimal(mtime_ns) ‖ "|" ‖
// mode_tag)).
func key(absPath string, mtimeNS int64, modeTag string) string {
	h := sha256.New()
	h.Write([]byte(absPath))
	h.Write([]byte("|"))
	h.Write([]byte(strconv.FormatInt(mtimeNS, 10)))
	h.Write([]byte("|"))
	h.Write([]byte(modeTag))
	return hex.EncodeToString(h.Sum(nil))
}

// entryPath rejects an absPath that has a ".." component and returns the
// on-disk path for the entry's JSON file: <root>/<key>.json.
func entryPath(root, absPath string, mtimeNS int64, modeTag string) (string, error) {
	if err := safety.CheckPath(absPath); err != nil {
		return "", err
	}
	k := key(absPath, mtimeNS, modeTag)
	return filepath.Join(root, k+".json"), nil
}
