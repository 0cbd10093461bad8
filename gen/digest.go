package gen

import (
	"bufio"
	"crypto/sha256"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	hex "github.com/tmthrgd/go-hex"

	"github.com/approxgen/approxgen/internal"
)

const digestMarker = "// approxgen:sha256 "

// ErrNoDigest is returned by FileDigest for files that exist but carry no
// digest header, e.g. hand-written files squatting on the output path.
var ErrNoDigest = errors.New("no approxgen digest header")

// InputDigest hashes everything that determines the generated output: the
// tool version, the output suffix and each source file's name and contents.
func InputDigest(suffix string, files []string) (string, error) {
	h := sha256.New()
	io.WriteString(h, "approxgen\x00"+internal.Version+"\x00"+suffix+"\x00")
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		io.WriteString(h, filepath.Base(file))
		io.WriteString(h, "\x00")
		h.Write(data)
		io.WriteString(h, "\x00")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileDigest extracts the input digest recorded in a generated file's
// header without parsing the rest of the file.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 0; scanner.Scan() && i < 5; i++ {
		line := scanner.Text()
		if strings.HasPrefix(line, digestMarker) {
			return strings.TrimSpace(strings.TrimPrefix(line, digestMarker)), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", ErrNoDigest
}
