package palette

var densityStyles = map[string]Palette{
	"shaded":         {" ", "░", "▒", "▓", "█"},
	"dots":           {" ", ".", "•", "●"},
	"ascii":          {" ", ".", ":", "+", "#", "@"},
	"height":         {" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
	"circles":        {"⚫", "⚪", "🟡", "🟠", "🔴"},
	"safety":         {"⚫", "🟢", "🟡", "🟠", "🔴", "⚪"},
	"rainbow_circle": {"⚫", "🟤", "🟣", "🔵", "🟢", "🟡", "🟠", "🔴", "⚪"},
	"rainbow_square": {"⬛", "🟫", "🟪", "🟦", "🟩", "🟨", "🟧", "🟥", "⬜"},
	"moon":           {"🌑", "🌘", "🌗", "🌖", "🌕"},
	"sparse":         {" ", "⬜", "▫️", "▪️", "⬛", "⚫"},
	"white":          {" ", "⚪", "🔘", "⚫"},
}

var absoluteThemes = map[string]Palette{
	"utf8_blocks": {" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
	"ascii_basic": {" ", ".", "-", "=", "+", "*", "#", "%", "@"},
	"hearts":      {" ", "🤍", "🤎", "❤️", "💛", "💚", "💙", "💜", "🖤"},
	"faces":       {" ", "😐", "🙂", "😊", "😃", "😄", "😁", "🤩", "🤯"},
}

// down, same, up
var deltaThemes = map[string]Palette{
	"arrows":       {"↓", "→", "↑"},
	"triangles":    {"▼", "◆", "▲"},
	"ascii_arrows": {"v", "-", "^"},
	"math":         {"-", "=", "+"},
	"faces":        {"😞", "😐", "😊"},
	"thumbs":       {"👎", "👍", "👍"}, // no neutral thumb
	"trends":       {"📉", "➡️", "📈"},
	"simple":       {"\\", "_", "/"},
}

// large down, small down, same, small up, large up
var trendThemes = map[string]Palette{
	"arrows":    {"⇩", "↓", "→", "↑", "⇧"},
	"ascii":     {"V", "v", "-", "^", "A"},
	"slopes":    {"\\\\", "\\", "_", "/", "//"},
	"intensity": {"--", "-", "=", "+", "++"},
	"faces":     {"😭", "😞", "😐", "😊", "🤩"},
	"chart":     {"📉", "📊", "➡️", "📊", "📈"},
}
