package keycodes

// Prefix is the QMK prefix shared by plain key codes.
const Prefix = "KC_"

var keyTable = map[string]string{
	// letters
	"KC_A": "A", "KC_B": "B", "KC_C": "C", "KC_D": "D", "KC_E": "E",
	"KC_F": "F", "KC_G": "G", "KC_H": "H", "KC_I": "I", "KC_J": "J",
	"KC_K": "K", "KC_L": "L", "KC_M": "M", "KC_N": "N", "KC_O": "O",
	"KC_P": "P", "KC_Q": "Q", "KC_R": "R", "KC_S": "S", "KC_T": "T",
	"KC_U": "U", "KC_V": "V", "KC_W": "W", "KC_X": "X", "KC_Y": "Y",
	"KC_Z": "Z",

	// digits
	"KC_1": "1", "KC_2": "2", "KC_3": "3", "KC_4": "4", "KC_5": "5",
	"KC_6": "6", "KC_7": "7", "KC_8": "8", "KC_9": "9", "KC_0": "0",

	// punctuation, long and short QMK spellings
	"KC_MINUS": "-", "KC_MINS": "-",
	"KC_EQUAL": "=", "KC_EQL": "=",
	"KC_LEFT_BRACKET": "[", "KC_LBRC": "[",
	"KC_RIGHT_BRACKET": "]", "KC_RBRC": "]",
	"KC_BACKSLASH": "\\", "KC_BSLS": "\\",
	"KC_SEMICOLON": ";", "KC_SCLN": ";",
	"KC_QUOTE": "'", "KC_QUOT": "'",
	"KC_GRAVE": "`", "KC_GRV": "`",
	"KC_COMMA": ",", "KC_COMM": ",",
	"KC_DOT": ".",
	"KC_SLASH": "/", "KC_SLSH": "/",

	// modifiers
	"KC_LSHIFT": "LSft", "KC_LEFT_SHIFT": "LSft", "KC_LSFT": "LSft",
	"KC_RSHIFT": "RSft", "KC_RIGHT_SHIFT": "RSft", "KC_RSFT": "RSft",
	"KC_LCTRL": "LCtl", "KC_LEFT_CTRL": "LCtl", "KC_LCTL": "LCtl",
	"KC_RCTRL": "RCtl", "KC_RIGHT_CTRL": "RCtl", "KC_RCTL": "RCtl",
	"KC_LALT": "LAlt", "KC_LEFT_ALT": "LAlt",
	"KC_RALT": "RAlt", "KC_RIGHT_ALT": "RAlt",
	"KC_LGUI": "LGui", "KC_LEFT_GUI": "LGui",
	"KC_RGUI": "RGui", "KC_RIGHT_GUI": "RGui",

	// function keys
	"KC_F1": "F1", "KC_F2": "F2", "KC_F3": "F3", "KC_F4": "F4", "KC_F5": "F5",
	"KC_F6": "F6", "KC_F7": "F7", "KC_F8": "F8", "KC_F9": "F9", "KC_F10": "F10",
	"KC_F11": "F11", "KC_F12": "F12", "KC_F13": "F13", "KC_F14": "F14", "KC_F15": "F15",
	"KC_F16": "F16", "KC_F17": "F17", "KC_F18": "F18", "KC_F19": "F19", "KC_F20": "F20",

	// editing and navigation
	"KC_SPACE": "Space", "KC_SPC": "Space",
	"KC_ENTER": "Enter", "KC_ENT": "Enter",
	"KC_ESCAPE": "Esc", "KC_ESC": "Esc",
	"KC_TAB": "Tab",
	"KC_BACKSPACE": "BkSp", "KC_BSPC": "BkSp",
	"KC_DELETE": "Del", "KC_DEL": "Del",
	"KC_INSERT": "Ins", "KC_INS": "Ins",
	"KC_HOME": "Home",
	"KC_END": "End",
	"KC_PAGE_UP": "PgUp", "KC_PGUP": "PgUp",
	"KC_PAGE_DOWN": "PgDn", "KC_PGDN": "PgDn",
	"KC_CAPS_LOCK": "Caps", "KC_CAPS": "Caps",
	"KC_PRINT_SCREEN": "PrtSc", "KC_PSCR": "PrtSc",

	// arrows
	"KC_LEFT": "←", "KC_DOWN": "↓", "KC_UP": "↑", "KC_RIGHT": "→",

	// media
	"KC_AUDIO_MUTE": "Mute", "KC_MUTE": "Mute",
	"KC_AUDIO_VOL_UP": "Vol+", "KC_VOLU": "Vol+",
	"KC_AUDIO_VOL_DOWN": "Vol-", "KC_VOLD": "Vol-",
	"KC_MEDIA_PLAY_PAUSE": "Play", "KC_MPLY": "Play",
	"KC_MEDIA_NEXT_TRACK": "Next", "KC_MNXT": "Next",
	"KC_MEDIA_PREV_TRACK": "Prev", "KC_MPRV": "Prev",

	// layers
	"TO(1)": "→L1", "TO(2)": "→L2", "TO(3)": "→L3", "TO(4)": "→L4",
	"MO(1)": "L1", "MO(2)": "L2", "MO(3)": "L3", "MO(4)": "L4",
	"TG(1)": "⇄L1", "TG(2)": "⇄L2", "TG(3)": "⇄L3", "TG(4)": "⇄L4",

	// empty / transparent
	"KC_TRANSPARENT": "▽", "KC_TRNS": "▽", "_______": "▽",
	"KC_NO": "✗", "XXXXXXX": "✗",

	// chords
	"LCTL(KC_C)": "Ctl+C", "LCTL(KC_V)": "Ctl+V", "LCTL(KC_X)": "Ctl+X", "LCTL(KC_Z)": "Ctl+Z",
	"LGUI(KC_C)": "Cmd+C", "LGUI(KC_V)": "Cmd+V", "LGUI(KC_X)": "Cmd+X", "LGUI(KC_Z)": "Cmd+Z",
}

var shiftedTable = map[string]string{
	"KC_1": "!", "KC_2": "@", "KC_3": "#", "KC_4": "$", "KC_5": "%",
	"KC_6": "^", "KC_7": "&", "KC_8": "*", "KC_9": "(", "KC_0": ")",
	"KC_MINUS": "_", "KC_MINS": "_",
	"KC_EQUAL": "+", "KC_EQL": "+",
	"KC_LEFT_BRACKET": "{", "KC_LBRC": "{",
	"KC_RIGHT_BRACKET": "}", "KC_RBRC": "}",
	"KC_BACKSLASH": "|", "KC_BSLS": "|",
	"KC_SEMICOLON": ":", "KC_SCLN": ":",
	"KC_QUOTE": "\"", "KC_QUOT": "\"",
	"KC_GRAVE": "~", "KC_GRV": "~",
	"KC_COMMA": "<", "KC_COMM": "<",
	"KC_DOT": ">",
	"KC_SLASH": "?", "KC_SLSH": "?",
}
