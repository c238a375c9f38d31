// Package domain defines the data models and interfaces shared by the analysis
// tools. It contains plain types and contracts only; the cipher itself lives in
// internal/des.
package domain
