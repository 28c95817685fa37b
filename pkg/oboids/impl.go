/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboids

import (
	"sort"
	"strings"
)

// IsURL returns true if the id is already an absolute IRI
func IsURL(id string) bool {
	for _, s := range urlSchemes {
		if strings.HasPrefix(id, s) {
			return true
		}
	}
	return false
}

// OboIDToIRI maps the compact id to an IRI. Unprefixed ids are placed into the current ontology id space
func OboIDToIRI(id, currentOntology string) string {
	return NewMapper(currentOntology, nil).IRI(id)
}

// IRIToOboID maps the IRI back to a compact id. IRIs which do not follow OBO conventions are returned unchanged
func IRIToOboID(iri string) string {
	return NewMapper("", nil).ID(iri)
}

// Mapper maps ids using the current ontology and the idspace declarations of a document
type Mapper struct {
	ontology string
	idspaces map[string]string
	// idspace prefixes sorted by IRI length, longest first
	byIRI []string
}

func NewMapper(currentOntology string, idspaces map[string]string) *Mapper {
	m := &Mapper{ontology: currentOntology, idspaces: idspaces}
	for p := range idspaces {
		m.byIRI = append(m.byIRI, p)
	}
	sort.Slice(m.byIRI, func(i, j int) bool {
		li, lj := len(idspaces[m.byIRI[i]]), len(idspaces[m.byIRI[j]])
		if li != lj {
			return li > lj
		}
		return m.byIRI[i] < m.byIRI[j]
	})
	return m
}

// Ontology returns the current ontology id
func (m *Mapper) Ontology() string {
	return m.ontology
}

// IRI maps the compact id to an IRI
func (m *Mapper) IRI(id string) string {
	if IsURL(id) {
		return id
	}
	prefix, local, prefixed := strings.Cut(id, ":")
	if !prefixed {
		return OboPrefix + m.ontology + "#" + encodeLocal(id)
	}
	if ns, ok := m.idspaces[prefix]; ok {
		return ns + local
	}
	if ns, ok := WellKnownPrefixes[prefix]; ok {
		return ns + local
	}
	if strings.Contains(local, "_") {
		return OboPrefix + prefix + "#_" + encodeLocal(local)
	}
	return OboPrefix + prefix + "_" + encodeLocal(local)
}

// ID maps the IRI to a compact id
func (m *Mapper) ID(iri string) string {
	for _, p := range m.byIRI {
		if ns := m.idspaces[p]; strings.HasPrefix(iri, ns) && len(iri) > len(ns) {
			return p + ":" + iri[len(ns):]
		}
	}
	for p, ns := range WellKnownPrefixes {
		if strings.HasPrefix(iri, ns) && len(iri) > len(ns) {
			return p + ":" + iri[len(ns):]
		}
	}

	slash := strings.LastIndex(iri, "/")
	if slash < 0 {
		return iri
	}
	last := iri[slash+1:]

	if prefix, local, ok := strings.Cut(last, "#_"); ok && prefix != "" {
		return prefix + ":" + decodeLocal(local)
	}
	if _, fragment, ok := strings.Cut(last, "#"); ok {
		if fragment == "" {
			return iri
		}
		return decodeLocal(fragment)
	}

	parts := strings.Split(last, "_")
	switch {
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return parts[0] + ":" + decodeLocal(parts[1])
	case len(parts) > 2 && isDigits(parts[len(parts)-1]):
		i := strings.LastIndex(last, "_")
		return last[:i] + ":" + decodeLocal(last[i+1:])
	}
	return iri
}

// OntologyIRI returns the IRI of the ontology document
func OntologyIRI(ontologyID string) string {
	if IsURL(ontologyID) {
		return ontologyID
	}
	return OboPrefix + strings.TrimSuffix(ontologyID, owlFileSuffix) + owlFileSuffix
}

// VersionIRI returns the IRI of the ontology version
func VersionIRI(ontologyID, version string) string {
	if IsURL(version) {
		return version
	}
	id := strings.TrimSuffix(ontologyID, owlFileSuffix)
	return OboPrefix + id + "/" + version + "/" + id + owlFileSuffix
}

// OntologyIDFromIRI returns the ontology id for the ontology IRI
func OntologyIDFromIRI(iri string) string {
	if !strings.HasPrefix(iri, OboPrefix) {
		return iri
	}
	id := strings.TrimPrefix(iri, OboPrefix)
	if strings.Contains(id, "/") {
		return iri
	}
	return strings.TrimSuffix(id, owlFileSuffix)
}

// VersionFromIRI extracts the version from the version IRI of the ontology
func VersionFromIRI(ontologyID, versionIRI string) string {
	prefix := OboPrefix + ontologyID + "/"
	suffix := "/" + ontologyID + owlFileSuffix
	if strings.HasPrefix(versionIRI, prefix) && strings.HasSuffix(versionIRI, suffix) && len(versionIRI) > len(prefix)+len(suffix) {
		return versionIRI[len(prefix) : len(versionIRI)-len(suffix)]
	}
	return versionIRI
}
