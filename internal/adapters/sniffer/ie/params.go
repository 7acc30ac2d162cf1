package ie

// TaggedParameters maps tag names to their raw value bytes. Values borrow
// from the buffer the collection was built from; accessors that hand data
// to callers return copies.
type TaggedParameters struct {
	tags map[TagName][]byte
}

// NewTaggedParameters returns an empty collection.
func NewTaggedParameters() *TaggedParameters {
	return &TaggedParameters{tags: make(map[TagName][]byte)}
}

// Collect drains it into a new collection. The first overflow aborts the
// whole extraction: no partial collection is returned alongside the error.
func Collect(it *TagIterator) (*TaggedParameters, error) {
	params := NewTaggedParameters()
	for it.Next() {
		tag := it.Tag()
		params.Add(tag.Name, tag.Value)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return params, nil
}

// Parse is shorthand for Collect(NewTagIterator(data)).
func Parse(data []byte) (*TaggedParameters, error) {
	return Collect(NewTagIterator(data))
}

// Add stores value under name, replacing any earlier occurrence.
func (p *TaggedParameters) Add(name TagName, value []byte) {
	p.tags[name] = value
}

// Len returns the number of distinct tags.
func (p *TaggedParameters) Len() int {
	return len(p.tags)
}

// All returns the underlying map. Callers must not modify it.
func (p *TaggedParameters) All() map[TagName][]byte {
	return p.tags
}

// Bytes returns the raw value of name, borrowed from the source buffer.
func (p *TaggedParameters) Bytes(name TagName) ([]byte, bool) {
	v, ok := p.tags[name]
	return v, ok
}

// SSID returns a copy of the SSID value. A zero-length SSID is a hidden or
// wildcard network name and is returned as an empty, non-nil slice.
func (p *TaggedParameters) SSID() ([]byte, bool) {
	v, ok := p.tags[TagSSID]
	if !ok {
		return nil, false
	}
	ssid := make([]byte, len(v))
	copy(ssid, v)
	return ssid, true
}

// SupportedRates returns the advertised rates in Mbit/s. The basic-rate
// marker is ignored; see BasicRates.
func (p *TaggedParameters) SupportedRates() ([]float64, bool) {
	v, ok := p.tags[TagSupportedRates]
	if !ok {
		return nil, false
	}
	rates := make([]float64, 0, len(v))
	for _, b := range v {
		rates = append(rates, rateMbps(b))
	}
	return rates, true
}

// BasicRates returns the supported rates flagged as basic (mandatory).
func (p *TaggedParameters) BasicRates() ([]float64, bool) {
	v, ok := p.tags[TagSupportedRates]
	if !ok {
		return nil, false
	}
	var rates []float64
	for _, b := range v {
		if isBasicRate(b) {
			rates = append(rates, rateMbps(b))
		}
	}
	return rates, true
}

// Channel returns the primary channel from the DS Parameter Set, falling
// back to HT Information for 5 GHz networks.
func (p *TaggedParameters) Channel() (uint8, bool) {
	for _, name := range [...]TagName{TagDSParameter, TagHTInformation} {
		if v, ok := p.tags[name]; ok && len(v) > 0 {
			return v[0], true
		}
	}
	return 0, false
}

// RSN decodes the RSN information element, if present.
func (p *TaggedParameters) RSN() (*RSNVersion, bool) {
	v, ok := p.tags[TagRSNInformation]
	if !ok {
		return nil, false
	}
	return ParseRSN(v)
}
