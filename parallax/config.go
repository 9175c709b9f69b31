package parallax

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

const bandSectionPrefix = "band."

// LoadTable reads a split table from an INI file or byte slice. Each band
// is a section named band.N; bands are ordered by N. Keys are x, line,
// timer_max and speed, all 0-255. The returned table has been validated.
//
//	[band.0]
//	line = 0
//	timer_max = 255
//
//	[band.1]
//	line = 35
//	timer_max = 32
//	speed = 1
func LoadTable(source interface{}) (Table, error) {
	f, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("load split table: %w", err)
	}

	type indexed struct {
		n int
		d Descriptor
	}
	var bands []indexed
	for _, sec := range f.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection {
			continue
		}
		if !strings.HasPrefix(name, bandSectionPrefix) {
			return nil, fmt.Errorf("split table: unknown section %q", name)
		}
		n, err := strconv.Atoi(strings.TrimPrefix(name, bandSectionPrefix))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("split table: bad band index in %q", name)
		}
		d, err := readDescriptor(sec)
		if err != nil {
			return nil, fmt.Errorf("split table [%s]: %w", name, err)
		}
		bands = append(bands, indexed{n: n, d: d})
	}

	sort.Slice(bands, func(i, j int) bool { return bands[i].n < bands[j].n })

	t := make(Table, 0, len(bands))
	for i, b := range bands {
		if i > 0 && bands[i-1].n == b.n {
			return nil, fmt.Errorf("split table: duplicate band %d", b.n)
		}
		t = append(t, b.d)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func readDescriptor(sec *ini.Section) (Descriptor, error) {
	var d Descriptor
	fields := []struct {
		key string
		dst *uint8
	}{
		{"x", &d.X},
		{"line", &d.Line},
		{"timer_max", &d.TimerMax},
		{"speed", &d.Speed},
	}
	for _, fld := range fields {
		if !sec.HasKey(fld.key) {
			continue
		}
		v, err := sec.Key(fld.key).Uint()
		if err != nil {
			return d, fmt.Errorf("%s: %w", fld.key, err)
		}
		if v > 0xFF {
			return d, fmt.Errorf("%s: %d exceeds 255", fld.key, v)
		}
		*fld.dst = uint8(v)
	}
	return d, nil
}
