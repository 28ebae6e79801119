package locale

// Console messages.
const (
	NoFilesFound       = "No files found matching pattern"
	RemovingOutput     = "Removing existing output file"
	RemovingRelated    = "Removing related file"
	CannotCreateOutput = "Could not create output shapefile"
	NoNonEmptyFiles    = "No non-empty shapefiles found matching pattern"
	CannotOpen         = "Could not open shapefile"
	CannotRead         = "Could not read shapefile"
	FieldCreateFailed  = "Failed to create field"
	ProcessingFile     = "Processing file"
	FieldMismatch      = "Field mismatch"
	FeaturesFailed     = "Failed to create features"
	IncorrectGeometry  = "Incorrect geometry features"
	LayerTypeDiffers   = "Layer geometry type differs from target type"
	ValueTruncated     = "Value truncated to field width"
	ValueTooLarge      = "Value does not fit field width, skipped"
	CodePageUnknown    = "Unknown code page, using fallback"
	MergeStarting      = "Merging shapefiles"
	MergeFailed        = "Merging failed"
	OutputWritten      = "Output file written"
	MergingCompleted   = "Merging completed"
	InputDirNotFound   = "Input directory not found"
)

// Help text, keyed by id rather than by content.
const (
	HelpUsage       = "help.usage"
	HelpDescription = "help.description"
	HelpAll         = "help.all"
)

var polish = map[string]string{
	NoFilesFound:       "Nie znaleziono plików pasujących do wzorca",
	RemovingOutput:     "Usuwam istniejący plik wyjściowy",
	RemovingRelated:    "Usuwam powiązany plik",
	CannotCreateOutput: "Nie można utworzyć wyjściowego pliku shapefile",
	NoNonEmptyFiles:    "Nie znaleziono niepustych plików shapefile pasujących do wzorca",
	CannotOpen:         "Nie można otworzyć pliku shapefile",
	CannotRead:         "Nie można odczytać pliku shapefile",
	FieldCreateFailed:  "Nie udało się utworzyć pola",
	ProcessingFile:     "Przetwarzanie pliku",
	FieldMismatch:      "Niezgodność pól",
	FeaturesFailed:     "Nie udało się utworzyć obiektów",
	IncorrectGeometry:  "Nieprawidłowe obiekty geometrii",
	LayerTypeDiffers:   "Typ geometrii warstwy różni się od typu docelowego",
	ValueTruncated:     "Wartość obcięta do szerokości pola",
	ValueTooLarge:      "Wartość nie mieści się w polu, pominięto",
	CodePageUnknown:    "Nieznana strona kodowa, używam domyślnej",
	MergeStarting:      "Scalanie plików shapefile",
	MergeFailed:        "Scalanie nie powiodło się",
	OutputWritten:      "Zapisano plik wyjściowy",
	MergingCompleted:   "Scalanie zakończone",
	InputDirNotFound:   "Katalog wejściowy nie został znaleziony",

	HelpUsage: "Scala pliki shapefile z katalogu 'bdot.shp' na podstawie sufiksów, scalając pola o tej samej nazwie.",
	HelpDescription: `Program oczekuje katalogu o nazwie 'bdot.shp' w bieżącym katalogu roboczym.
Pliki shapefile obszarów (z sufiksem _A) są scalane do area_merged.shp.
Pliki shapefile linii (z sufiksem _L) są scalane do line_merged.shp.
Pliki shapefile punktów (z sufiksem _P) są scalane do point_merged.shp.`,
	HelpAll: "uwzględnij pliki zawierające '_KUxx', '_ADxx', '_TCON' i '_SKDR' podczas przetwarzania",
}

var english = map[string]string{
	HelpUsage: "Merges shapefiles from 'bdot.shp' directory based on suffixes, merging fields with same name.",
	HelpDescription: `The program expects a directory named 'bdot.shp' in the current working directory.
Area shapefiles (with _A suffix) are merged into area_merged.shp.
Line shapefiles (with _L suffix) are merged into line_merged.shp.
Point shapefiles (with _P suffix) are merged into point_merged.shp.`,
	HelpAll: "include files containing '_KUxx', '_ADxx', '_TCON' & '_SKDR' in processing",
}
