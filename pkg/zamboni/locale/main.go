package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// message catalog for reviewer-facing strings. the history view (and
// the pages around it) look strings up by id thru a Translator; adding
// a locale means adding a SetString block here.

type Translator struct {
	tag language.Tag
	printer *message.Printer
}

func registerLocale(tag language.Tag, entries map[string]string) {
	for k, v := range entries {
		message.SetString(tag, k, v)
	}
}

func init() {
	registerLocale(language.AmericanEnglish, map[string]string{
		"history.version.header": "Version %s",
		"history.version.by": "by %s",
		"history.version.notes": "Version Notes",
		"history.approval.notes": "Approval Notes",
		"history.files": "Files",
		"history.validation": "Validation",
		"history.contents": "Contents",
		"history.compare": "Compare",
		"history.next": "Next",
		"history.previous": "Previous",
		"history.loading": "Loading…",
		"history.no.versions": "This app has no versions.",
		"queue.title": "Review Queue",
		"queue.empty": "Nothing to review. Enjoy the silence.",
		"review.title": "Review History",
		"file.title": "File Contents",
		"file.validation.title": "Validation Results",
		"file.validation.empty": "This file has never been validated.",
		"compare.title": "File Compare",
	})
	registerLocale(language.French, map[string]string{
		"history.version.header": "Version %s",
		"history.version.by": "par %s",
		"history.version.notes": "Notes de version",
		"history.approval.notes": "Notes d'approbation",
		"history.files": "Fichiers",
		"history.validation": "Validation",
		"history.contents": "Contenu",
		"history.compare": "Comparer",
		"history.next": "Suivant",
		"history.previous": "Précédent",
		"history.loading": "Chargement…",
		"history.no.versions": "Cette application n'a aucune version.",
		"queue.title": "File de revue",
		"queue.empty": "Rien à examiner.",
		"review.title": "Historique de revue",
		"file.title": "Contenu du fichier",
		"file.validation.title": "Résultats de validation",
		"file.validation.empty": "Ce fichier n'a jamais été validé.",
		"compare.title": "Comparaison de fichiers",
	})
}

func NewTranslator(locale string) (*Translator, error) {
	tag, err := language.Parse(locale)
	if err != nil { return nil, err }
	return &Translator{
		tag: tag,
		printer: message.NewPrinter(tag),
	}, nil
}

func (t *Translator) Tr(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

func (t *Translator) Tag() language.Tag {
	return t.tag
}
