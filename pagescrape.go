// Package pagescrape extracts metadata, content, links and images from a
// single web page into a structured record, computes summary statistics
// over it, and exports it as JSON, CSV or a ZIP bundle with a QR code.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, qrcode/).
package pagescrape
