package filter

import "math"

// Params carries backend-specific options through the adapter untouched.
// Keys and meanings are defined by each backend; the adapter never
// inspects them. The zero value means no options.
type Params struct {
	// Num holds numeric options.
	Num map[string]float64
	// Str holds string options.
	Str map[string]string
}

// GetNum extracts a numeric option, returning def if missing or non-finite.
func (p Params) GetNum(key string, def float64) float64 {
	if p.Num == nil {
		return def
	}

	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// GetStr extracts a string option, returning def if missing or empty.
func (p Params) GetStr(key, def string) string {
	if p.Str == nil {
		return def
	}

	v, ok := p.Str[key]
	if !ok || v == "" {
		return def
	}

	return v
}

// IsZero reports whether no options are set.
func (p Params) IsZero() bool {
	return len(p.Num) == 0 && len(p.Str) == 0
}

// Clone returns a deep copy of the option maps.
func (p Params) Clone() Params {
	var out Params

	if p.Num != nil {
		out.Num = make(map[string]float64, len(p.Num))
		for k, v := range p.Num {
			out.Num[k] = v
		}
	}

	if p.Str != nil {
		out.Str = make(map[string]string, len(p.Str))
		for k, v := range p.Str {
			out.Str[k] = v
		}
	}

	return out
}
