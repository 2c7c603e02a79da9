package questionbank

// Template is one curated prompt. Options/Reference are only set for
// choice-shaped kinds.
type Template struct {
	Prompt    string
	Options   []string
	Reference int // trivia only: authored expected option
	Category  string
}

// ref marks kinds without a reference option.
const noRef = -1

var freeTextTemplates = []Template{
	{Prompt: "What moment from our first month together do you think about most often?", Reference: noRef, Category: "memories"},
	{Prompt: "What is one thing I do that makes you feel most loved?", Reference: noRef, Category: "affection"},
	{Prompt: "If we could teleport anywhere for one weekend, where would you take us?", Reference: noRef, Category: "travel"},
	{Prompt: "What is a habit of mine you secretly find adorable?", Reference: noRef, Category: "affection"},
	{Prompt: "What song will always remind you of us?", Reference: noRef, Category: "memories"},
	{Prompt: "What did you think the first time you saw me?", Reference: noRef, Category: "memories"},
	{Prompt: "What is something you want us to learn together this year?", Reference: noRef, Category: "future"},
	{Prompt: "Describe our relationship in exactly three words.", Reference: noRef, Category: "fun"},
	{Prompt: "What small thing could I do tomorrow that would make your day?", Reference: noRef, Category: "affection"},
	{Prompt: "What is the meal you most want us to cook together?", Reference: noRef, Category: "fun"},
	{Prompt: "Which of my dreams do you most want to see come true?", Reference: noRef, Category: "future"},
	{Prompt: "What is the funniest thing that has happened to us as a couple?", Reference: noRef, Category: "memories"},
	{Prompt: "Where do you picture us in five years?", Reference: noRef, Category: "future"},
	{Prompt: "What is one fear you have never told me about?", Reference: noRef, Category: "deep"},
	{Prompt: "What made you realize you wanted to be with me?", Reference: noRef, Category: "deep"},
	{Prompt: "If today repeated forever, what one thing would you want in it?", Reference: noRef, Category: "fun"},
}

var triviaTemplates = []Template{
	{Prompt: "What is the most common love language?", Options: []string{"Words of affirmation", "Quality time", "Gifts", "Acts of service"}, Reference: 1, Category: "relationships"},
	{Prompt: "Which date idea do couples rate highest?", Options: []string{"Dinner out", "Cooking at home", "Hiking", "Movie night"}, Reference: 1, Category: "relationships"},
	{Prompt: "What do most couples argue about first?", Options: []string{"Money", "Chores", "Family", "Free time"}, Reference: 0, Category: "relationships"},
	{Prompt: "What matters most for a lasting relationship?", Options: []string{"Passion", "Trust", "Shared hobbies", "Humor"}, Reference: 1, Category: "relationships"},
	{Prompt: "How often should couples try something new together?", Options: []string{"Weekly", "Monthly", "Yearly", "Never"}, Reference: 1, Category: "habits"},
	{Prompt: "What is the most popular anniversary gift?", Options: []string{"Jewelry", "A trip", "Flowers", "A letter"}, Reference: 2, Category: "habits"},
	{Prompt: "Which gesture do people say they miss most?", Options: []string{"Hand-holding", "Love notes", "Slow dancing", "Surprise calls"}, Reference: 1, Category: "habits"},
	{Prompt: "What is the ideal length for a first date?", Options: []string{"One hour", "Two hours", "Half a day", "A whole day"}, Reference: 1, Category: "fun"},
	{Prompt: "What do couples say keeps the spark alive?", Options: []string{"Date nights", "Compliments", "Surprises", "Space"}, Reference: 0, Category: "fun"},
	{Prompt: "Which shared activity correlates with happier couples?", Options: []string{"Watching TV", "Cooking", "Exercising", "Shopping"}, Reference: 2, Category: "habits"},
	{Prompt: "What is the most common pet name couples use?", Options: []string{"Babe", "Honey", "Love", "Sweetie"}, Reference: 0, Category: "fun"},
	{Prompt: "When do most couples say 'I love you' first?", Options: []string{"First month", "Three months", "Six months", "A year"}, Reference: 1, Category: "relationships"},
}

var wouldYouRatherTemplates = []Template{
	{Prompt: "Would you rather have a beach vacation or a mountain cabin?", Options: []string{"Beach", "Mountains"}, Reference: noRef, Category: "travel"},
	{Prompt: "Would you rather stay in with takeout or dress up and go out?", Options: []string{"Stay in", "Go out"}, Reference: noRef, Category: "fun"},
	{Prompt: "Would you rather relive our first date or fast-forward to our next trip?", Options: []string{"First date", "Next trip"}, Reference: noRef, Category: "memories"},
	{Prompt: "Would you rather cook together every night or never do dishes again?", Options: []string{"Cook together", "No dishes"}, Reference: noRef, Category: "fun"},
	{Prompt: "Would you rather slow dance in the kitchen or stargaze on the roof?", Options: []string{"Slow dance", "Stargaze"}, Reference: noRef, Category: "romance"},
	{Prompt: "Would you rather get a pet together or plant a garden together?", Options: []string{"Pet", "Garden"}, Reference: noRef, Category: "future"},
	{Prompt: "Would you rather read each other's minds for a day or swap lives for a day?", Options: []string{"Read minds", "Swap lives"}, Reference: noRef, Category: "fun"},
	{Prompt: "Would you rather have breakfast in bed or a midnight snack run?", Options: []string{"Breakfast in bed", "Midnight snack"}, Reference: noRef, Category: "fun"},
	{Prompt: "Would you rather travel the world for a year or buy our dream home now?", Options: []string{"Travel", "Dream home"}, Reference: noRef, Category: "future"},
	{Prompt: "Would you rather always hold hands or always get forehead kisses?", Options: []string{"Hold hands", "Forehead kisses"}, Reference: noRef, Category: "romance"},
	{Prompt: "Would you rather have a karaoke night or a board game night?", Options: []string{"Karaoke", "Board games"}, Reference: noRef, Category: "fun"},
	{Prompt: "Would you rather grow old in a city or by the sea?", Options: []string{"City", "Sea"}, Reference: noRef, Category: "future"},
	{Prompt: "Would you rather rewatch our favorite movie or discover a new one?", Options: []string{"Rewatch", "Discover"}, Reference: noRef, Category: "fun"},
	{Prompt: "Would you rather talk all night or fall asleep in each other's arms early?", Options: []string{"Talk all night", "Sleep early"}, Reference: noRef, Category: "romance"},
}

var thisOrThatTemplates = []Template{
	{Prompt: "Coffee or tea?", Options: []string{"Coffee", "Tea"}, Reference: noRef, Category: "tastes"},
	{Prompt: "Sunrise or sunset?", Options: []string{"Sunrise", "Sunset"}, Reference: noRef, Category: "tastes"},
	{Prompt: "Sweet or savory?", Options: []string{"Sweet", "Savory"}, Reference: noRef, Category: "tastes"},
	{Prompt: "Summer or winter?", Options: []string{"Summer", "Winter"}, Reference: noRef, Category: "tastes"},
	{Prompt: "Texting or calling?", Options: []string{"Texting", "Calling"}, Reference: noRef, Category: "habits"},
	{Prompt: "Early bird or night owl?", Options: []string{"Early bird", "Night owl"}, Reference: noRef, Category: "habits"},
	{Prompt: "Window seat or aisle seat?", Options: []string{"Window", "Aisle"}, Reference: noRef, Category: "travel"},
	{Prompt: "Dogs or cats?", Options: []string{"Dogs", "Cats"}, Reference: noRef, Category: "tastes"},
	{Prompt: "Books or movies?", Options: []string{"Books", "Movies"}, Reference: noRef, Category: "tastes"},
	{Prompt: "Pancakes or waffles?", Options: []string{"Pancakes", "Waffles"}, Reference: noRef, Category: "tastes"},
	{Prompt: "City break or road trip?", Options: []string{"City break", "Road trip"}, Reference: noRef, Category: "travel"},
	{Prompt: "Plan everything or wing it?", Options: []string{"Plan", "Wing it"}, Reference: noRef, Category: "habits"},
	{Prompt: "Dancing or singing?", Options: []string{"Dancing", "Singing"}, Reference: noRef, Category: "fun"},
	{Prompt: "Home-cooked or restaurant?", Options: []string{"Home-cooked", "Restaurant"}, Reference: noRef, Category: "tastes"},
	{Prompt: "Mountains or ocean?", Options: []string{"Mountains", "Ocean"}, Reference: noRef, Category: "travel"},
}
