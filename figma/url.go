package figma

import (
	"net/url"
	"strings"

	"github.com/dsdoc/dsdoc"
)

// ParseFileURL extracts the file key and target node id from a design file
// URL. Both the /file/ and /design/ path shapes are accepted, and node ids
// in the 1-2 URL form normalize to the 1:2 API form.
func ParseFileURL(raw string) (fileKey, nodeID string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", dsdoc.Errorf(dsdoc.EINVALID, "invalid file URL: %v", err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || (parts[0] != "file" && parts[0] != "design") {
		return "", "", dsdoc.Errorf(dsdoc.EINVALID, "unrecognized file URL path %q", u.Path)
	}
	fileKey = parts[1]

	nodeID = strings.ReplaceAll(u.Query().Get("node-id"), "-", ":")

	if fileKey == "" || nodeID == "" {
		return "", "", dsdoc.Errorf(dsdoc.EINVALID, "file URL must carry a file key and a node-id parameter")
	}
	return fileKey, nodeID, nil
}
