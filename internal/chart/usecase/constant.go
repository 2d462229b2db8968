package usecase

const (
	titleNoStories  = "There were no stories published"
	titleSummary    = "Mission Report Summary"
	titleCategories = "New Stories By Category"

	labelPublishedStories = "Published Stories"
	labelCategory         = "Category"
	labelSummary          = "Summary"
	labelResults          = "Results/Fields/Comment/Betting"

	// categoryResults is the synthetic category grouping results-type genres.
	categoryResults = "results"

	tooltipHeader   = "{point.x}: {point.y}"
	chartTypeHigh   = "highcharts"
	summaryHeight   = 300
	tableChartType  = "column"
	timestampLayout = "02/01/2006 15:04"
	subtitleLayout  = "Monday, 02 January 2006"
)

var (
	headersStory   = []string{"Sent", "Slugline", "TakeKey", "Ednote"}
	headersReasons = []string{"Sent", "Slugline", "Reasons"}
	headersSMS     = []string{"Send", "Slugline", "TakeKey", "Ednote"}
)
