package chess

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	ErrMissingKind = errors.New("missing piece kind")
	ErrBadOffsets  = errors.New("bad offset table")
)

// Offset is one direction a piece may step in, written for the
// bottom side.
type Offset struct {
	DX, DY int
}

var _ interface {
	json.Marshaler
	json.Unmarshaler
} = &Offset{}

func (o Offset) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{o.DX, o.DY})
}

func (o *Offset) UnmarshalJSON(bs []byte) error {
	var v [2]int
	if err := json.Unmarshal(bs, &v); err != nil {
		return err
	}
	o.DX, o.DY = v[0], v[1]
	return nil
}

// KindInfo is the static, shared metadata for one piece kind.
type KindInfo struct {
	Offsets []Offset `json:"offsets"`
	Scale   float64  `json:"scale"`
	Asset   string   `json:"asset"`
	// Sliding kinds may walk the full span of the board along each
	// offset; the rest take a single step.
	Sliding bool `json:"sliding"`
}

// KindTable maps every Kind to its metadata. A table is read-only
// once a Position has been built from it.
type KindTable [NumKinds]*KindInfo

var _ interface {
	json.Marshaler
	json.Unmarshaler
} = &KindTable{}

var (
	rookOffsets   = []Offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopOffsets = []Offset{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	royalOffsets  = append(append([]Offset{}, rookOffsets...), bishopOffsets...)
)

// DefaultKinds returns a fresh copy of the standard table.
func DefaultKinds() *KindTable {
	clone := func(os []Offset) []Offset {
		return append([]Offset(nil), os...)
	}
	return &KindTable{
		Pawn: {
			Offsets: []Offset{{1, 0}},
			Scale:   2.0,
			Asset:   "resources/pawn.png",
		},
		Knight: {
			Offsets: []Offset{
				{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
				{2, 1}, {-2, 1}, {2, -1}, {-2, -1},
			},
			Scale: 2.5,
			Asset: "resources/knight.png",
		},
		Bishop: {
			Offsets: clone(bishopOffsets),
			Scale:   2.5,
			Asset:   "resources/bishop.png",
			Sliding: true,
		},
		Rook: {
			Offsets: clone(rookOffsets),
			Scale:   2.5,
			Asset:   "resources/rook.png",
			Sliding: true,
		},
		Queen: {
			Offsets: clone(royalOffsets),
			Scale:   3.0,
			Asset:   "resources/queen.png",
			Sliding: true,
		},
		King: {
			Offsets: clone(royalOffsets),
			Scale:   3.0,
			Asset:   "resources/king.png",
		},
	}
}

// Validate reports the first kind with missing or unusable metadata.
func (t *KindTable) Validate() error {
	for k, info := range t {
		if info == nil {
			return fmt.Errorf("%w: %s", ErrMissingKind, Kind(k))
		}
		if len(info.Offsets) == 0 {
			return fmt.Errorf("%w: %s has no offsets", ErrBadOffsets, Kind(k))
		}
		for _, o := range info.Offsets {
			if o.DX == 0 && o.DY == 0 {
				return fmt.Errorf("%w: %s has a zero offset", ErrBadOffsets, Kind(k))
			}
		}
		if info.Scale < 0 {
			return fmt.Errorf("%w: %s has negative scale", ErrBadOffsets, Kind(k))
		}
	}
	return nil
}

func (t *KindTable) Info(k Kind) *KindInfo {
	if !k.Valid() || t[k] == nil {
		panic(fmt.Sprintf("no metadata for kind %d", int(k)))
	}
	return t[k]
}

func (t *KindTable) MarshalJSON() ([]byte, error) {
	h := make(map[string]*KindInfo)
	for k, info := range t {
		if info != nil {
			h[Kind(k).String()] = info
		}
	}
	return json.Marshal(h)
}

func (t *KindTable) UnmarshalJSON(bs []byte) error {
	h := make(map[string]*KindInfo)
	if err := json.Unmarshal(bs, &h); err != nil {
		return err
	}
	for name, info := range h {
		k, ok := KindByName(name)
		if !ok {
			return fmt.Errorf("unknown piece kind: %q", name)
		}
		t[k] = info
	}
	return nil
}

// LoadKinds reads a JSON kind table and validates it.
func LoadKinds(r io.Reader) (*KindTable, error) {
	var t KindTable
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode kind table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
