package objstore_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/treeverse/revwalk/pkg/ident"
	"github.com/treeverse/revwalk/pkg/objstore"
)

func TestCommitRoundTrip(t *testing.T) {
	p1 := ident.Hash("commit", []byte("p1"))
	p2 := ident.Hash("commit", []byte("p2"))
	tests := map[string]objstore.CommitBody{
		"root_commit": {
			Committer:  "alice",
			CommitTime: time.Unix(1690000000, 0).UTC(),
			Message:    "initial commit",
		},
		"merge_commit": {
			Parents:    []ident.ID{p1, p2},
			Committer:  "Bob Builder",
			CommitTime: time.Unix(1690001234, 0).UTC(),
			Message:    "merge branch 'feature'\n\nwith a multi-line body",
		},
		"empty_message": {
			Parents:    []ident.ID{p1},
			Committer:  "carol",
			CommitTime: time.Unix(0, 0).UTC(),
		},
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			decoded, err := objstore.DecodeCommit(objstore.EncodeCommit(body))
			if err != nil {
				t.Fatalf("DecodeCommit() error: %s", err)
			}
			if diff := deep.Equal(&body, decoded); diff != nil {
				t.Fatalf("commit round trip diff: %s", diff)
			}
		})
	}
}

func TestDecodeCommitMalformed(t *testing.T) {
	goodParent := ident.Hash("commit", []byte("p")).String()
	tests := map[string]string{
		"empty":                 "",
		"no_terminator":         "committer alice 1",
		"missing_committer":     "parent " + goodParent + "\n\nmsg",
		"bad_parent_id":         "parent zzzz\ncommitter alice 1\n\nmsg",
		"bad_committer_time":    "committer alice never\n\nmsg",
		"committer_no_time":     "committer alice\n\nmsg",
		"duplicate_committer":   "committer alice 1\ncommitter bob 2\n\nmsg",
		"parent_after_commiter": "committer alice 1\nparent " + goodParent + "\n\nmsg",
		"unknown_header":        "tree abc\ncommitter alice 1\n\nmsg",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := objstore.DecodeCommit([]byte(input))
			if !errors.Is(err, objstore.ErrBadObject) {
				t.Fatalf("DecodeCommit(%q) err=%v, expected ErrBadObject", input, err)
			}
		})
	}
}

func TestTagRoundTrip(t *testing.T) {
	body := objstore.TagBody{
		Target:     ident.Hash("commit", []byte("tagged")),
		TargetType: objstore.TypeCommit,
		Name:       "v1.0.0",
		Message:    "release",
	}
	decoded, err := objstore.DecodeTag(objstore.EncodeTag(body))
	if err != nil {
		t.Fatalf("DecodeTag() error: %s", err)
	}
	if diff := deep.Equal(&body, decoded); diff != nil {
		t.Fatalf("tag round trip diff: %s", diff)
	}
}

func TestDecodeTagMalformed(t *testing.T) {
	target := ident.Hash("commit", []byte("t")).String()
	tests := map[string]struct {
		input    string
		expected error
	}{
		"missing_object":   {"type commit\ntag v1\n\nmsg", objstore.ErrBadObject},
		"missing_type":     {"object " + target + "\ntag v1\n\nmsg", objstore.ErrBadObject},
		"missing_tag_name": {"object " + target + "\ntype commit\n\nmsg", objstore.ErrBadObject},
		"unknown_type":     {"object " + target + "\ntype widget\ntag v1\n\nmsg", objstore.ErrInvalidType},
		"duplicate_object": {"object " + target + "\nobject " + target + "\ntype commit\ntag v1\n\nmsg", objstore.ErrBadObject},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := objstore.DecodeTag([]byte(tt.input))
			if !errors.Is(err, tt.expected) {
				t.Fatalf("DecodeTag(%q) err=%v, expected %v", tt.input, err, tt.expected)
			}
		})
	}
}

func TestEncodeCommitCanonical(t *testing.T) {
	body := objstore.CommitBody{
		Parents:    []ident.ID{ident.Hash("commit", []byte("p"))},
		Committer:  "alice",
		CommitTime: time.Unix(1690000000, 0).UTC(),
		Message:    "msg",
	}
	first := objstore.EncodeCommit(body)
	second := objstore.EncodeCommit(body)
	if string(first) != string(second) {
		t.Fatal("EncodeCommit() is not canonical for identical bodies")
	}
}
