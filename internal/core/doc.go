// Package core provides the business logic for dataset validation and
// cataloging. It runs uploaded files through the validation engine, renders
// and stores reports, and admits valid files into the dataset catalog.
// This package has no HTTP dependencies and can be used by any frontend.
package core
