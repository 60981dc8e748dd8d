package main

import (
	"fmt"
	"os"

	"github.com/cuemby/catalogstore/pkg/catalog"
	"github.com/spf13/cobra"
)

// openFacade opens (creating only if create is true) the store at the
// --db flag's path, consulting a global catalog that treats every key as
// registered and none as hidden — operator tooling always sees the full
// configuration blob.
func openFacade(cmd *cobra.Command, create bool) (*catalog.Facade, *catalog.Lifecycle, error) {
	path, _ := cmd.Flags().GetString("db")
	store := catalog.NewStore(path)
	facade := catalog.NewFacade(store, allKeysCatalog{})
	life := catalog.NewLifecycle(facade)

	if create {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := life.Create(); err != nil {
				return nil, nil, fmt.Errorf("failed to create store: %w", err)
			}
			return facade, life, nil
		}
	}
	if err := life.Load(); err != nil {
		return nil, nil, fmt.Errorf("failed to load store: %w", err)
	}
	return facade, life, nil
}

// allKeysCatalog is a GlobalCatalog that reports every key as registered
// and not hidden.
type allKeysCatalog struct{}

func (allKeysCatalog) FindByKey(string) (catalog.GlobalEntry, bool) {
	return catalog.GlobalEntry{Type: "string"}, true
}
