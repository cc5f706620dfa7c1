// Package webscrape fetches web pages through a headless browser and turns
// the rendered markup into overlapping text windows or formatted hyperlinks
// for downstream retrieval and summarization pipelines.
//
// This package contains domain types, interfaces and the pure text and link
// algorithms, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., rod/, chromedp/, goquery/).
package webscrape
