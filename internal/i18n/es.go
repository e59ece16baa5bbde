package i18n

import (
	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/stats"
)

var spanish = Table{
	Code:          "es",
	LanguageName:  "Español",
	LanguageLabel: "Idioma",
	LanguageNames: map[string]string{
		"es": "Español",
		"en": "Inglés",
		"ja": "Japonés",
	},
	Errors: Errors{
		StartSession:  "Ups, no pudimos iniciar la sesión. Inténtalo de nuevo.",
		NextOperation: "No pudimos cargar la siguiente operación.",
		SubmitAnswer:  "No pudimos guardar tu respuesta. Intenta otra vez.",
		StatsUpload:   "No se pudo cargar el archivo de estadísticas. Asegúrate de seleccionar un JSON válido.",
	},
	App: App{
		HelperEarly:       "Respira profundo y piensa paso a paso.",
		HelperLate:        "¡Ya casi terminas!",
		HelperDefault:     "Suma o resta con calma, ¡tú puedes!",
		HeaderBadge:       "¡Aprendamos jugando!",
		HeaderTitle:       "Práctica de Sumas y Restas",
		HeaderDescription: "Resuelve cada reto escribiendo la respuesta correcta y gana estrellas mientras avanzas.",
	},
	Settings: Settings{
		WelcomeBadge: "¡Bienvenido a MathCards!",
		Title:        "Configura tu aventura",
		Description:  "Elige qué tipo de operaciones quieres practicar y cuántos retos completarás hoy.",
		ModeLabel:    "Modo de juego",
		ModeOptions: map[quiz.Mode]string{
			quiz.ModeSum: "Solo sumas",
			quiz.ModeSub: "Solo restas",
			quiz.ModeMix: "Mixto",
		},
		DifficultyLabel: "Dificultad",
		DifficultyOptions: [quiz.MaxDifficulty]string{
			"1 cifra",
			"2 cifras (1 + 2)",
			"2 cifras (2 + 2)",
			"3 y 2 cifras",
			"3 cifras",
			"4 y 3 cifras",
		},
		CountLabel:     "Número de retos",
		CountOption:    "%d retos",
		StartButton:    "¡Empezar ahora!",
		LoadingButton:  "Preparando retos...",
		LanguageHelper: "Puedes cambiar el idioma en cualquier momento.",

		StatsPreviewTitle:           "Tus estadísticas",
		StatsPreviewEmpty:           "Aquí verás tus resultados una vez que completes tu primera sesión.",
		StatsPreviewSessions:        "%d sesiones guardadas",
		StatsPreviewAverageScore:    "Promedio de puntaje: %s%%",
		StatsPreviewBestScore:       "Mejor puntaje: %s%%",
		StatsPreviewAverageDuration: "Tiempo promedio: %s",
		StatsPreviewLastScore:       "Último puntaje: %s%%",
		StatsPreviewLastDuration:    "Último tiempo: %s",
		StatsPreviewLastUpdated:     "Última sesión: %s",
	},
	Card: Card{
		ChallengeLabel:    "Reto %d de %d",
		StarsEarned:       "%d estrellas",
		Question:          "¿Cuál es el resultado?",
		ProgressLabel:     "Progreso: %d%%",
		AnswerLabel:       "Tu respuesta",
		AnswerPlaceholder: "Escribe el resultado",
		SubmitButton:      "Comprobar respuesta",
		ErrRequired:       "Escribe tu respuesta antes de continuar.",
		ErrInvalid:        "Introduce solo números enteros.",
		FeedbackCorrect:   "¡Excelente! Sigue así.",
		FeedbackIncorrect: "Casi. La respuesta correcta es %s.",
	},
	Summary: Summary{
		Title: "¡Sesión completada! 🎉",
		ModeMessages: map[quiz.Mode]string{
			quiz.ModeMix: "Hoy domaste sumas y restas como un verdadero explorador.",
			quiz.ModeSum: "Las sumas ya no tienen secretos para ti.",
			quiz.ModeSub: "¡Las restas se rinden ante tus habilidades!",
		},
		CardCorrect:  "Correctas",
		CardWrong:    "Por mejorar",
		CardScore:    "Tu puntaje",
		CardDuration: "Tiempo empleado",
		Encouragement: map[stats.EncouragementTier]string{
			stats.EncourageTop:  "¡Eres una estrella de las matemáticas!",
			stats.EncourageHigh: "¡Gran trabajo, sigue practicando!",
			stats.EncourageMid:  "Cada intento te hace más fuerte.",
			stats.EncourageLow:  "¡No te rindas! Mañana será aún mejor.",
		},
		Restart:         "Jugar otra vez",
		StatsTitle:      "Estadísticas guardadas",
		TotalSessions:   "%d sesiones",
		BestScore:       "Mejor puntaje: %s%%",
		AverageScore:    "Promedio: %s%%",
		AverageDuration: "Tiempo promedio: %s",
		BestDuration:    "Mejor tiempo: %s",
		LastDuration:    "Último tiempo: %s",
		LastUpdated:     "Última sesión: %s",
		Download:        "Descargar estadísticas",
		Downloaded:      "Estadísticas guardadas en %s",
		Upload:          "Cargar estadísticas",
		Uploaded:        "%d sesiones cargadas",
		UploadHint:      "Selecciona un archivo JSON con tus estadísticas guardadas.",
		StatsError:      "Error al cargar: %s",
	},
	Duration: stats.UnitFormatter("min", "s"),
}
