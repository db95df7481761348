// Package sqlite provides the durable storage for rfcdex: the corpus
// table, the FTS5 search index (porter tokenizer, bm25 ranking) and the
// sync run history, all in a single database file under the data
// directory. Schema changes are applied through embedded migrations.
package sqlite
