package catalog

// ClusterDescriptor is the value for a `cluster_<id>` key (spec §4.1). Only
// the paginated variant is modeled; Variant is kept explicit so adding a
// second arm later cannot silently change the wire format (spec §9).
type ClusterDescriptor struct {
	Variant             string // always "paginated" today
	Name                string
	UseWal              bool
	BinaryFormatVersion int32
	Encryption          *string
	ConflictStrategy    *string
	Status              *string
	Compression         *string
}

// EncodeClusterDescriptor encodes d per spec §4.1: name, useWal byte,
// binary-format-version, then encryption/conflictStrategy/status/compression
// as string values, in that order.
func EncodeClusterDescriptor(d ClusterDescriptor) []byte {
	out := EncodeString(&d.Name)
	out = append(out, EncodeBool(d.UseWal)...)
	out = append(out, EncodeInt(d.BinaryFormatVersion)...)
	out = append(out, EncodeString(d.Encryption)...)
	out = append(out, EncodeString(d.ConflictStrategy)...)
	out = append(out, EncodeString(d.Status)...)
	out = append(out, EncodeString(d.Compression)...)
	return out
}

// DecodeClusterDescriptor decodes a ClusterDescriptor previously produced by
// EncodeClusterDescriptor. key annotates any CorruptValueError.
func DecodeClusterDescriptor(key string, b []byte) (ClusterDescriptor, error) {
	var d ClusterDescriptor
	d.Variant = "paginated"
	off := 0

	name, n, err := DecodeString(key, b, off)
	if err != nil {
		return d, err
	}
	off += n
	if name == nil {
		return d, NewCorruptValue(key, off, "cluster name must not be null")
	}
	d.Name = *name

	useWal, n, err := DecodeBool(key, b, off)
	if err != nil {
		return d, err
	}
	off += n
	d.UseWal = useWal

	bv, n, err := DecodeInt(key, b, off)
	if err != nil {
		return d, err
	}
	off += n
	d.BinaryFormatVersion = bv

	for _, dst := range []**string{&d.Encryption, &d.ConflictStrategy, &d.Status, &d.Compression} {
		v, n, err := DecodeString(key, b, off)
		if err != nil {
			return d, err
		}
		off += n
		*dst = v
	}
	return d, nil
}

// IndexEngineDescriptor is the value for an `engine_<name>` key (spec
// §4.1).
type IndexEngineDescriptor struct {
	Version               int32
	ValueSerializerId     byte
	KeySerializerId       byte
	Automatic             bool
	NullValuesSupported   bool
	KeySize               int32
	Algorithm             *string
	IndexType             *string
	Encryption            *string
	KeyTypes              []string
	EngineProperties      map[string]*string
	// EnginePropertiesOrder preserves insertion order so EncodeIndexEngineDescriptor
	// is deterministic; required because Go map iteration is randomized.
	EnginePropertiesOrder []string
}

// EncodeIndexEngineDescriptor encodes d per spec §4.1.
func EncodeIndexEngineDescriptor(d IndexEngineDescriptor) []byte {
	out := EncodeInt(d.Version)
	out = append(out, EncodeByte(d.ValueSerializerId)...)
	out = append(out, EncodeByte(d.KeySerializerId)...)
	out = append(out, EncodeBool(d.Automatic)...)
	out = append(out, EncodeBool(d.NullValuesSupported)...)
	out = append(out, EncodeInt(d.KeySize)...)
	out = append(out, EncodeString(d.Algorithm)...)
	out = append(out, EncodeString(d.IndexType)...)
	out = append(out, EncodeString(d.Encryption)...)

	out = append(out, EncodeInt(int32(len(d.KeyTypes)))...)
	for _, kt := range d.KeyTypes {
		kt := kt
		out = append(out, EncodeString(&kt)...)
	}

	order := d.EnginePropertiesOrder
	if order == nil {
		for k := range d.EngineProperties {
			order = append(order, k)
		}
	}
	out = append(out, EncodeInt(int32(len(order)))...)
	for _, k := range order {
		k := k
		out = append(out, EncodeString(&k)...)
		out = append(out, EncodeString(d.EngineProperties[k])...)
	}
	return out
}

// DecodeIndexEngineDescriptor decodes an IndexEngineDescriptor previously
// produced by EncodeIndexEngineDescriptor.
func DecodeIndexEngineDescriptor(key string, b []byte) (IndexEngineDescriptor, error) {
	var d IndexEngineDescriptor
	off := 0

	version, n, err := DecodeInt(key, b, off)
	if err != nil {
		return d, err
	}
	off += n
	d.Version = version

	valueSerId, n, err := DecodeByte(key, b, off)
	if err != nil {
		return d, err
	}
	off += n
	d.ValueSerializerId = valueSerId

	keySerId, n, err := DecodeByte(key, b, off)
	if err != nil {
		return d, err
	}
	off += n
	d.KeySerializerId = keySerId

	automatic, n, err := DecodeBool(key, b, off)
	if err != nil {
		return d, err
	}
	off += n
	d.Automatic = automatic

	nullsOk, n, err := DecodeBool(key, b, off)
	if err != nil {
		return d, err
	}
	off += n
	d.NullValuesSupported = nullsOk

	keySize, n, err := DecodeInt(key, b, off)
	if err != nil {
		return d, err
	}
	off += n
	d.KeySize = keySize

	for _, dst := range []**string{&d.Algorithm, &d.IndexType, &d.Encryption} {
		v, n, err := DecodeString(key, b, off)
		if err != nil {
			return d, err
		}
		off += n
		*dst = v
	}

	keyTypeCount, n, err := DecodeInt(key, b, off)
	if err != nil {
		return d, err
	}
	off += n
	if keyTypeCount < 0 {
		return d, NewCorruptValue(key, off, "negative keyTypes count")
	}
	d.KeyTypes = make([]string, 0, keyTypeCount)
	for i := int32(0); i < keyTypeCount; i++ {
		v, n, err := DecodeString(key, b, off)
		if err != nil {
			return d, err
		}
		off += n
		if v == nil {
			return d, NewCorruptValue(key, off, "null keyTypes entry")
		}
		d.KeyTypes = append(d.KeyTypes, *v)
	}

	propCount, n, err := DecodeInt(key, b, off)
	if err != nil {
		return d, err
	}
	off += n
	if propCount < 0 {
		return d, NewCorruptValue(key, off, "negative engineProperties count")
	}
	d.EngineProperties = make(map[string]*string, propCount)
	d.EnginePropertiesOrder = make([]string, 0, propCount)
	for i := int32(0); i < propCount; i++ {
		pk, n, err := DecodeString(key, b, off)
		if err != nil {
			return d, err
		}
		off += n
		if pk == nil {
			return d, NewCorruptValue(key, off, "null engineProperties key")
		}
		pv, n, err := DecodeString(key, b, off)
		if err != nil {
			return d, err
		}
		off += n
		d.EngineProperties[*pk] = pv
		d.EnginePropertiesOrder = append(d.EnginePropertiesOrder, *pk)
	}
	return d, nil
}
