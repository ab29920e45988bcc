// Package dataprocessing implements the transformation core of the sales
// ETL pipeline: loading the three delimited inputs, normalizing column
// types, resolving product categories, joining order lines to their headers
// with the two derived columns, and the two analytical queries over the
// published tables.
//
// Missing values are represented as nil pointers throughout. A missing value
// is data, not an error: it flows into the publish tables and the analytics
// layer groups or excludes it explicitly. Only corrupt mandatory key columns
// and unreadable input files abort a run.
package dataprocessing
