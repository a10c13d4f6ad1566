package i18n

func polishSet() TranslationSet {
	return TranslationSet{
		Description:      "Sprawdza każdą ścieżkę wejściową w chwili jej użycia, nie ufając wcześniejszym sprawdzeniom",
		InpathHelp:       "Plik(i) wejściowe",
		ConfigFlagHelp:   "Wypisz domyślną konfigurację",
		DebugFlagHelp:    "Zapisuj dziennik deweloperski w katalogu konfiguracji",
		KindFlagHelp:     "Rodzaj każdego wejścia: any, file lub directory",
		FailFastFlagHelp: "Zatrzymaj się na pierwszym wejściu, którego nie da się użyć",
		NoPrecheckHelp:   "Pomiń wstępne sprawdzenie wszystkich wejść",
		BacktraceHelp:    "Wypisz ślad stosu razem z błędem",

		PathColumn:   "ŚCIEŻKA",
		KindColumn:   "RODZAJ",
		SizeColumn:   "ROZMIAR",
		DetailColumn: "SZCZEGÓŁY",

		EntriesDetail: "%d pozycji",
		LinesDetail:   "%d linii",

		EmptyInpathError: "ścieżka wejściowa nie może być pusta",
		UnknownFlagError: "nieznana flaga %s",
		PrecheckFailed:   "wejście %s nie przeszło wstępnego sprawdzenia",
		InputFailed:      "nie można użyć wejścia %s",
		InputsFailed:     "nie udało się przetworzyć %d z %d wejść",

		UsageTitle:     "Użycie",
		ArgumentsTitle: "Argumenty",
		FlagsTitle:     "Flagi",
	}
}
