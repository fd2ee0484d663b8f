package objstore

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/treeverse/revwalk/pkg/ident"
)

// Object bodies are encoded as a block of "key value" header lines, a blank
// line, and a free-form message. Header order is fixed so that encoding is
// canonical: the same body always produces the same bytes, and therefore the
// same content address.

const (
	headerParent    = "parent"
	headerCommitter = "committer"
	headerObject    = "object"
	headerType      = "type"
	headerTag       = "tag"
)

// CommitBody is the structured content of a commit object. Parents are
// ordered; CommitTime drives walk ordering and is stored with second
// precision in UTC.
type CommitBody struct {
	Parents    []ident.ID
	Committer  string
	CommitTime time.Time
	Message    string
}

// TagBody is the structured content of an annotated tag object. Target may
// name an object of any type, including another tag.
type TagBody struct {
	Target     ident.ID
	TargetType Type
	Name       string
	Message    string
}

func EncodeCommit(body CommitBody) []byte {
	var b bytes.Buffer
	for _, p := range body.Parents {
		fmt.Fprintf(&b, "%s %s\n", headerParent, p)
	}
	fmt.Fprintf(&b, "%s %s %d\n", headerCommitter, body.Committer, body.CommitTime.Unix())
	b.WriteByte('\n')
	b.WriteString(body.Message)
	return b.Bytes()
}

func DecodeCommit(data []byte) (*CommitBody, error) {
	headers, message, err := splitBody(data)
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	body := &CommitBody{Message: message}
	sawCommitter := false
	for _, h := range headers {
		switch h.key {
		case headerParent:
			if sawCommitter {
				return nil, fmt.Errorf("%w: parent after committer", ErrBadObject)
			}
			id, err := ident.Parse(h.value)
			if err != nil {
				return nil, fmt.Errorf("%w: parent: %s", ErrBadObject, err)
			}
			body.Parents = append(body.Parents, id)
		case headerCommitter:
			if sawCommitter {
				return nil, fmt.Errorf("%w: duplicate committer", ErrBadObject)
			}
			name, ts, ok := splitLast(h.value)
			if !ok {
				return nil, fmt.Errorf("%w: committer line %q", ErrBadObject, h.value)
			}
			seconds, err := strconv.ParseInt(ts, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: committer time %q", ErrBadObject, ts)
			}
			body.Committer = name
			body.CommitTime = time.Unix(seconds, 0).UTC()
			sawCommitter = true
		default:
			return nil, fmt.Errorf("%w: unexpected commit header %q", ErrBadObject, h.key)
		}
	}
	if !sawCommitter {
		return nil, fmt.Errorf("%w: missing committer", ErrBadObject)
	}
	return body, nil
}

func EncodeTag(body TagBody) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s\n", headerObject, body.Target)
	fmt.Fprintf(&b, "%s %s\n", headerType, body.TargetType)
	fmt.Fprintf(&b, "%s %s\n", headerTag, body.Name)
	b.WriteByte('\n')
	b.WriteString(body.Message)
	return b.Bytes()
}

func DecodeTag(data []byte) (*TagBody, error) {
	headers, message, err := splitBody(data)
	if err != nil {
		return nil, fmt.Errorf("tag: %w", err)
	}
	body := &TagBody{Message: message}
	seen := map[string]bool{}
	for _, h := range headers {
		if seen[h.key] {
			return nil, fmt.Errorf("%w: duplicate tag header %q", ErrBadObject, h.key)
		}
		seen[h.key] = true
		switch h.key {
		case headerObject:
			id, err := ident.Parse(h.value)
			if err != nil {
				return nil, fmt.Errorf("%w: object: %s", ErrBadObject, err)
			}
			body.Target = id
		case headerType:
			typ, err := ParseType(h.value)
			if err != nil {
				return nil, err
			}
			body.TargetType = typ
		case headerTag:
			body.Name = h.value
		default:
			return nil, fmt.Errorf("%w: unexpected tag header %q", ErrBadObject, h.key)
		}
	}
	for _, required := range []string{headerObject, headerType, headerTag} {
		if !seen[required] {
			return nil, fmt.Errorf("%w: missing %q header", ErrBadObject, required)
		}
	}
	return body, nil
}

type header struct {
	key   string
	value string
}

// splitBody separates the header block from the message. The blank line is
// mandatory even when the message is empty.
func splitBody(data []byte) ([]header, string, error) {
	head, message, found := strings.Cut(string(data), "\n\n")
	if !found {
		return nil, "", fmt.Errorf("%w: missing header terminator", ErrBadObject)
	}
	var headers []header
	for _, line := range strings.Split(head, "\n") {
		key, value, ok := strings.Cut(line, " ")
		if !ok || key == "" {
			return nil, "", fmt.Errorf("%w: header line %q", ErrBadObject, line)
		}
		headers = append(headers, header{key: key, value: value})
	}
	return headers, message, nil
}

// splitLast cuts value at its last space: "Jane Doe 1690000000" splits into
// "Jane Doe" and "1690000000".
func splitLast(value string) (string, string, bool) {
	i := strings.LastIndexByte(value, ' ')
	if i < 0 {
		return "", "", false
	}
	return value[:i], value[i+1:], true
}
