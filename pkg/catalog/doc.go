/*
Package catalog implements the atomic, persistent storage-configuration
store of a paginated graph/document database engine: the per-database
catalog of schema record identifiers, locale and date/time defaults,
cluster descriptors, secondary-index engine descriptors, user properties,
and tuning constants.

# Architecture

	ConfigFacade (typed get/set, derived locale/date-format instances)
	      |
	      v
	ValueCodec (bit-exact binary encoding per value family)
	      |
	      v
	CatalogStore (get/put/drop/prefixScan/clear, single RWMutex)
	      |
	      v
	internal/engine (bbolt-backed IndexMap + RecordCluster + TxnMgr)

TextSerializer sits beside CatalogStore as an orthogonal read path: it
walks a Facade, taking the store read lock once per read rather than for
the whole walk, and emits a single pipe-delimited
byte stream reproducing the legacy wire format, parameterized by a
network-protocol version.

# Usage

	store := catalog.NewStore("config.db")
	facade := catalog.NewFacade(store, catalog.NewStaticGlobalCatalog())
	lifecycle := catalog.NewLifecycle(facade)

	if err := lifecycle.Create(); err != nil {
		log.Fatal(err.Error())
	}
	defer lifecycle.Close()

	if err := facade.SetDateFormat("yyyy-MM-dd HH:mm:ss"); err != nil {
		log.Fatal(err.Error())
	}
*/
package catalog
