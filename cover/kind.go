package cover

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind selects the covering strategy.
type Kind int

const (
	KindRectangles Kind = iota
	KindTriangles
)

var kindNames = map[Kind]string{
	KindRectangles: "Rectangles",
	KindTriangles:  "Triangles",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the kind names case-insensitively.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidKind, "%q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, errors.Wrapf(ErrInvalidKind, "%d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
