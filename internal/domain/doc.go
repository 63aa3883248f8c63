// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (recordings, measures, results) and contracts
// (interfaces) only.
package domain
