package settings

import (
	"fmt"

	"github.com/amaumene/trackarr/internal/fsname"
)

// NewPathFragmentList builds the setting shape shared by the tracked
// extension, filename and directory lists: an object carrying a whitelist
// flag and an array of path fragments.
//
// An empty whitelist would track nothing and is rejected as a
// misconfiguration; an empty blacklist tracks everything and is legal.
// Every fragment's data must pass the filename validator under the
// fragment's own slash flag, the setting's subdirectory mode and the
// registry's platform rules. allowEmptyFragment admits the empty string as
// fragment data, used by the extension list where it denotes "no
// extension".
func NewPathFragmentList(envVar string, allowSubdirectory, allowEmptyFragment, windowsCompat bool) Setting {
	validate := func(value any) bool {
		return validFragmentList(value, allowSubdirectory, allowEmptyFragment, windowsCompat)
	}
	return New(validate, envVar, fragmentListShape(allowSubdirectory, allowEmptyFragment))
}

func fragmentListShape(allowSubdirectory, allowEmptyFragment bool) string {
	data := "valid filename"
	if allowSubdirectory {
		data = "valid directory path"
	}
	if allowEmptyFragment {
		data += " or empty"
	}
	return fmt.Sprintf("{whitelist: boolean (true requires a non-empty list), pathFragments: [{data: %s, caseSensitive: boolean, interchangeableSlashes: boolean}]}", data)
}

func validFragmentList(value any, allowSubdirectory, allowEmptyFragment, windowsCompat bool) bool {
	obj, ok := value.(map[string]any)
	if !ok {
		return false
	}

	whitelist, ok := obj["whitelist"].(bool)
	if !ok {
		return false
	}

	fragments, ok := obj["pathFragments"].([]any)
	if !ok {
		return false
	}

	if whitelist && len(fragments) == 0 {
		return false
	}

	for _, fragment := range fragments {
		if !validFragment(fragment, allowSubdirectory, allowEmptyFragment, windowsCompat) {
			return false
		}
	}
	return true
}

func validFragment(value any, allowSubdirectory, allowEmptyFragment, windowsCompat bool) bool {
	obj, ok := value.(map[string]any)
	if !ok {
		return false
	}

	if _, ok := obj["caseSensitive"].(bool); !ok {
		return false
	}

	interchangeableSlashes, ok := obj["interchangeableSlashes"].(bool)
	if !ok {
		return false
	}

	data, ok := obj["data"].(string)
	if !ok {
		return false
	}

	if data == "" {
		return allowEmptyFragment
	}

	return fsname.IsValid(data, fsname.Rules{
		AllowSubdirectory:      allowSubdirectory,
		InterchangeableSlashes: interchangeableSlashes,
		WindowsCompat:          windowsCompat,
	})
}
