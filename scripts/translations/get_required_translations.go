package main

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/jesseduffield/pathcheck/pkg/i18n"
)

func main() {
	fmt.Println(getOutstandingTranslations())
}

// lists the strings each language has not translated yet, which fall back to english at runtime
// adapted from https://github.com/a8m/reflect-examples#read-struct-tags
func getOutstandingTranslations() string {
	translationSets := i18n.GetTranslationSets()

	languageCodes := make([]string, 0, len(translationSets))
	for languageCode := range translationSets {
		languageCodes = append(languageCodes, languageCode)
	}
	sort.Strings(languageCodes)

	output := ""
	for _, languageCode := range languageCodes {
		output += languageCode + ":\n"
		v := reflect.ValueOf(translationSets[languageCode])

		for i := 0; i < v.NumField(); i++ {
			value := v.Field(i).String()
			if value == "" {
				output += v.Type().Field(i).Name + "\n"
			}
		}
		output += "\n"
	}
	return output
}
