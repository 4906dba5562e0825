// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for protein-viewer: the
// AlphaFold DB prediction entry, the combined protein view served to the
// presentation layer, and component configuration.
package types

// Prediction is one AlphaFold DB entry as returned by the prediction API.
type Prediction struct {
	EntryID                string `json:"entryId" yaml:"entry_id"`
	Gene                   string `json:"gene,omitempty" yaml:"gene,omitempty"`
	UniProtAccession       string `json:"uniprotAccession" yaml:"uniprot_accession"`
	UniProtID              string `json:"uniprotId" yaml:"uniprot_id"`
	UniProtDescription     string `json:"uniprotDescription" yaml:"uniprot_description"`
	TaxID                  int    `json:"taxId,omitempty" yaml:"tax_id,omitempty"`
	OrganismScientificName string `json:"organismScientificName,omitempty" yaml:"organism_scientific_name,omitempty"`
	UniProtStart           int    `json:"uniprotStart,omitempty" yaml:"uniprot_start,omitempty"`
	UniProtEnd             int    `json:"uniprotEnd,omitempty" yaml:"uniprot_end,omitempty"`
	UniProtSequence        string `json:"uniprotSequence,omitempty" yaml:"uniprot_sequence,omitempty"`
	ModelCreatedDate       string `json:"modelCreatedDate,omitempty" yaml:"model_created_date,omitempty"`
	LatestVersion          int    `json:"latestVersion,omitempty" yaml:"latest_version,omitempty"`

	// CifURL is the mmCIF model file; it is the model the viewer loads.
	CifURL      string `json:"cifUrl" yaml:"cif_url"`
	PdbURL      string `json:"pdbUrl,omitempty" yaml:"pdb_url,omitempty"`
	BcifURL     string `json:"bcifUrl,omitempty" yaml:"bcif_url,omitempty"`
	PaeImageURL string `json:"paeImageUrl,omitempty" yaml:"pae_image_url,omitempty"`
	PaeDocURL   string `json:"paeDocUrl,omitempty" yaml:"pae_doc_url,omitempty"`
}

// UnknownName is the protein name used when the prediction has no description.
const UnknownName = "Unknown"

// Name returns the UniProt description, or UnknownName.
func (p Prediction) Name() string {
	if p.UniProtDescription == "" {
		return UnknownName
	}
	return p.UniProtDescription
}

// Protein is the combined view of one accession handed to the
// presentation layer. Summary is relayed verbatim from the extractor.
type Protein struct {
	Accession string `json:"uniprot_accession" yaml:"uniprot_accession"`
	Name      string `json:"protein_name" yaml:"protein_name"`
	Summary   string `json:"protein_summary" yaml:"protein_summary"`
	ModelURL  string `json:"model_url" yaml:"model_url"`

	Gene        string `json:"gene,omitempty" yaml:"gene,omitempty"`
	Organism    string `json:"organism,omitempty" yaml:"organism,omitempty"`
	PdbURL      string `json:"pdb_url,omitempty" yaml:"pdb_url,omitempty"`
	PaeImageURL string `json:"pae_image_url,omitempty" yaml:"pae_image_url,omitempty"`
}
