package frame

// Management is the closed set of concrete management frame kinds. Every
// implementation has a buffer at least as long as its fixed header, so the
// fixed-field accessors need no error return.
type Management interface {
	TaggedFrame
	Kind() Kind
	Subtype() ManagementSubtype
	management()
}

// AuthenticationFrame carries algorithm, sequence and status before its tags.
type AuthenticationFrame struct {
	ManagementFrame
}

func (*AuthenticationFrame) management() {}

// Algorithm returns the authentication algorithm number (0 open, 1 shared key, 3 SAE).
func (f *AuthenticationFrame) Algorithm() uint16 { return le16(f.data[24:26]) }

// TransactionSequence returns the authentication transaction sequence number.
func (f *AuthenticationFrame) TransactionSequence() uint16 { return le16(f.data[26:28]) }

func (f *AuthenticationFrame) StatusCode() uint16 { return le16(f.data[28:30]) }

// beaconFields is the fixed body shared by beacons and probe responses.
type beaconFields struct {
	ManagementFrame
}

// Timestamp returns the TSF timer value in microseconds.
func (f *beaconFields) Timestamp() uint64 { return le64(f.data[24:32]) }

// BeaconInterval returns the interval in time units (1024 µs).
func (f *beaconFields) BeaconInterval() uint16 { return le16(f.data[32:34]) }

// Capabilities returns the capability information field.
func (f *beaconFields) Capabilities() uint16 { return le16(f.data[34:36]) }

// Privacy reports whether the capability field requires encryption.
func (f *beaconFields) Privacy() bool { return f.Capabilities()&capabilityPrivacy != 0 }

const capabilityPrivacy = 1 << 4

// BeaconFrame is a beacon.
type BeaconFrame struct {
	beaconFields
}

func (*BeaconFrame) management() {}

// ProbeResponseFrame has the same fixed body as a beacon.
type ProbeResponseFrame struct {
	beaconFields
}

func (*ProbeResponseFrame) management() {}

// ProbeRequestFrame has no fixed fields; tags follow the MAC header.
type ProbeRequestFrame struct {
	ManagementFrame
}

func (*ProbeRequestFrame) management() {}

// AssociationRequestFrame carries capabilities and listen interval.
type AssociationRequestFrame struct {
	ManagementFrame
}

func (*AssociationRequestFrame) management() {}

func (f *AssociationRequestFrame) Capabilities() uint16 { return le16(f.data[24:26]) }

func (f *AssociationRequestFrame) ListenInterval() uint16 { return le16(f.data[26:28]) }

// AssociationResponseFrame carries capabilities, status and association ID.
type AssociationResponseFrame struct {
	ManagementFrame
}

func (*AssociationResponseFrame) management() {}

func (f *AssociationResponseFrame) Capabilities() uint16 { return le16(f.data[24:26]) }

func (f *AssociationResponseFrame) StatusCode() uint16 { return le16(f.data[26:28]) }

// AssociationID returns the AID without the two high marker bits.
func (f *AssociationResponseFrame) AssociationID() uint16 { return le16(f.data[28:30]) & 0x3FFF }
