// Package locales embeds the message catalogues and installs them as the
// global gotext storage.
package locales

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

const (
	DefaultLanguage = "en_GB"
	domain          = "default"
)

//go:embed en_GB/LC_MESSAGES/default.po
var enGB []byte

var catalogues = map[string][]byte{
	"en_GB": enGB,
}

var (
	mu       sync.RWMutex
	messages map[string]*gotext.Translation
)

// Install makes lang the language gotext.Get translates into.
func Install(lang string) error {
	data, ok := catalogues[lang]
	if !ok {
		return fmt.Errorf("no catalogue for language %q", lang)
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator(domain, po)
	gotext.SetStorage(l)

	mu.Lock()
	messages = po.GetDomain().GetTranslations()
	mu.Unlock()
	return nil
}

// Text returns the translation of a message id held in a variable, such as
// a treasure name. It never formats; use gotext.Get for literal ids.
// Unknown ids come back unchanged.
func Text(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if tr, ok := messages[key]; ok {
		return tr.Get()
	}
	return key
}
