package catalog

import (
	"strconv"
	"strings"
)

// TextSerializer emits the delimited text snapshot described in spec §4.2.
// It is read-only and never mutates anything. ToStream reads through the
// facade's Get/PrefixScan calls, each of which takes the store read lock on
// its own; the lock is not held across the whole snapshot, so a write that
// commits while ToStream runs can show up in part of the output only.
type TextSerializer struct {
	facade *Facade
}

// NewTextSerializer wraps facade for text-snapshot production.
func NewTextSerializer(facade *Facade) *TextSerializer {
	return &TextSerializer{facade: facade}
}

// networkVersion thresholds named in spec §4.2.
const (
	networkVersionConflictStrategyIntroduced = 24
	networkVersionLegacyDataSegmentRemoved   = 25
	networkVersionStatusIntroduced           = 25
	networkVersionContextIntroduced          = 24
	networkVersionEncryptionIntroduced        = 31
)

// MaxNetworkVersion is the highest network version this serializer knows
// about; passing it selects every optional field, including the trailing
// binary-format-version (spec §4.2: "for N=MAX binary version").
const MaxNetworkVersion = 31

type textBuilder struct {
	b strings.Builder
	n int
}

func (t *textBuilder) field(s string) {
	if t.n > 0 {
		t.b.WriteByte('|')
	}
	t.n++
	t.b.WriteString(s)
}

func (t *textBuilder) nullOr(s *string) {
	if s == nil {
		t.field(" ")
		return
	}
	t.field(*s)
}

func (t *textBuilder) int32(v int32) {
	t.field(strconv.FormatInt(int64(v), 10))
}

// ToStream produces the pipe-delimited text snapshot for network version n
// (spec §4.2). charset is accepted for signature compatibility with the
// original text-wire contract but does not affect field content, since the
// stream itself is always produced from Go strings (UTF-8 on the wire).
func (s *TextSerializer) ToStream(n int, charset string) (string, error) {
	_ = charset
	var t textBuilder

	t.int32(CurrentVersion)
	t.field(" ") // <pad>

	schemaId, err := s.facade.GetSchemaRecordId()
	if err != nil {
		return "", err
	}
	t.field(schemaId)
	t.field("") // reserved empty field between schemaRecordId and indexMgrRecordId

	idxMgrId, err := s.facade.GetIndexManagerRecordId()
	if err != nil {
		return "", err
	}
	t.field(idxMgrId)

	lang, err := s.facade.GetLocaleLanguage()
	if err != nil {
		return "", err
	}
	t.field(lang)

	country, err := s.facade.GetLocaleCountry()
	if err != nil {
		return "", err
	}
	t.field(country)

	dateFormat, err := s.facade.GetDateFormat()
	if err != nil {
		return "", err
	}
	t.field(dateFormat)
	t.field(dateFormat) // emitted twice per spec layout

	tz, err := s.facade.GetTimeZone()
	if err != nil {
		return "", err
	}
	t.field(tz)

	cs, err := s.facade.GetCharset()
	if err != nil {
		return "", err
	}
	t.field(cs)

	if n > networkVersionConflictStrategyIntroduced {
		strategy, err := s.facade.GetConflictStrategy()
		if err != nil {
			return "", err
		}
		t.nullOr(strategy)
	}

	writePhysSegmentBlock(&t)

	clusters, err := s.facade.GetClusters()
	if err != nil {
		return "", err
	}
	t.int32(int32(len(clusters)))
	for _, id := range sortedClusterIds(clusters) {
		writeClusterEntry(&t, n, clusters[id])
	}

	if n <= networkVersionLegacyDataSegmentRemoved {
		writeLegacyDataSegmentBlock(&t)
	}

	entries, err := s.facade.store.PrefixScan(prefixProperty)
	if err != nil {
		return "", err
	}
	t.int32(int32(len(entries)))
	for _, e := range entries {
		name, ok := PropertyNameFromKey(e.Key)
		if !ok {
			continue
		}
		v, _, err := DecodeString(e.Key, e.Value, 0)
		if err != nil {
			return "", err
		}
		t.field(name)
		t.nullOr(v)
	}

	binaryFormatVersion, err := s.facade.GetBinaryFormatVersion()
	if err != nil {
		return "", err
	}
	t.int32(binaryFormatVersion)

	clusterSelection, err := s.facade.GetClusterSelection()
	if err != nil {
		return "", err
	}
	t.nullOr(clusterSelection)

	minClusters, err := s.facade.GetMinimumClusters()
	if err != nil {
		return "", err
	}
	t.int32(minClusters)

	if n > networkVersionContextIntroduced {
		recordSer, err := s.facade.GetRecordSerializer()
		if err != nil {
			return "", err
		}
		t.nullOr(recordSer)

		recordSerVersion, err := s.facade.GetRecordSerializerVersion()
		if err != nil {
			return "", err
		}
		t.int32(recordSerVersion)

		cfg, _, err := s.facade.GetConfiguration()
		if err != nil {
			return "", err
		}
		keys := cfg.Keys()
		t.int32(int32(len(keys)))
		for _, k := range keys {
			v, _ := cfg.Get(k)
			t.field(k)
			t.field(v)
		}
	}

	engineNames, err := s.facade.IndexEngines()
	if err != nil {
		return "", err
	}
	t.int32(int32(len(engineNames)))
	for _, name := range engineNames {
		d, ok, err := s.facade.GetIndexEngine(name)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		t.field(name)
		t.int32(d.Version)
	}

	createAtVersion, err := s.facade.GetCreateAtVersion()
	if err != nil {
		return "", err
	}
	t.nullOr(createAtVersion)

	pageSize, err := s.facade.GetPageSize()
	if err != nil {
		return "", err
	}
	t.int32(pageSize)

	freeListBoundary, err := s.facade.GetFreeListBoundary()
	if err != nil {
		return "", err
	}
	t.int32(freeListBoundary)

	maxKeySize, err := s.facade.GetMaxKeySize()
	if err != nil {
		return "", err
	}
	t.int32(maxKeySize)

	t.field("")

	return t.b.String(), nil
}

// writePhysSegmentBlock fills the legacy physical-segment block with
// zero/empty defaults to remain byte-compatible with prior readers (spec
// §4.2); this implementation has no physical-segment concept of its own.
func writePhysSegmentBlock(t *textBuilder) {
	t.int32(0)
	t.field(" ")
}

// writeLegacyDataSegmentBlock fills the legacy data-segment block present
// only for N≤25 (spec §4.2).
func writeLegacyDataSegmentBlock(t *textBuilder) {
	t.int32(0)
	t.field(" ")
}

func sortedClusterIds(m map[int]ClusterDescriptor) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}

// writeClusterEntry writes one cluster's header, per spec §4.2. The "d"
// discriminator marks paginated clusters and is emitted unconditionally:
// this implementation has only the paginated variant, so there is no
// non-paginated branch to guess at (spec §9 Open Question resolution).
func writeClusterEntry(t *textBuilder, n int, d ClusterDescriptor) {
	t.field("d")
	t.field(d.Name)
	t.field(boolString(d.UseWal))

	if n > networkVersionConflictStrategyIntroduced {
		t.nullOr(d.ConflictStrategy)
	}
	if n > networkVersionStatusIntroduced {
		t.nullOr(d.Status)
	}
	if n >= networkVersionEncryptionIntroduced {
		t.nullOr(d.Encryption)
	}
	if n == MaxNetworkVersion {
		t.int32(d.BinaryFormatVersion)
	}
}
