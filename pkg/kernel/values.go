package kernel

import "strings"

type Email string

func (e Email) String() string { return string(e) }

// IsValid performs a minimal shape check; real validation happens at delivery.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.IndexByte(s, '@')
	return at > 0 && at < len(s)-1
}

type FirstName string

func (n FirstName) String() string { return string(n) }

type LastName string

func (n LastName) String() string { return string(n) }

type JobTitle string

type JobDescription string

// BucketURL locates a stored document. It is either an object-storage key
// or an absolute http(s) URL; readers route on the scheme.
type BucketURL string

func (b BucketURL) String() string { return string(b) }
func (b BucketURL) IsEmpty() bool  { return string(b) == "" }
