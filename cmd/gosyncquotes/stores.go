package main

// This file imports all store implementations to trigger their init()
// functions, which register them with the global store registry.
//
// The blank imports ensure that all stores are registered at program startup.

import (
	_ "gosyncquotes/store/bolt"   // BoltDB store
	_ "gosyncquotes/store/sqlite" // SQLite store
)
