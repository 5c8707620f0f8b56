package color

import (
	"strings"

	"github.com/lumen-home/light/plugins/common"
)

// CSS3 color names.
var namedColors = map[string]common.RGB{
	"aliceblue":            {R: 240, G: 248, B: 255},
	"antiquewhite":         {R: 250, G: 235, B: 215},
	"aqua":                 {R: 0, G: 255, B: 255},
	"aquamarine":           {R: 127, G: 255, B: 212},
	"azure":                {R: 240, G: 255, B: 255},
	"beige":                {R: 245, G: 245, B: 220},
	"bisque":               {R: 255, G: 228, B: 196},
	"black":                {R: 0, G: 0, B: 0},
	"blanchedalmond":       {R: 255, G: 235, B: 205},
	"blue":                 {R: 0, G: 0, B: 255},
	"blueviolet":           {R: 138, G: 43, B: 226},
	"brown":                {R: 165, G: 42, B: 42},
	"burlywood":            {R: 222, G: 184, B: 135},
	"cadetblue":            {R: 95, G: 158, B: 160},
	"chartreuse":           {R: 127, G: 255, B: 0},
	"chocolate":            {R: 210, G: 105, B: 30},
	"coral":                {R: 255, G: 127, B: 80},
	"cornflowerblue":       {R: 100, G: 149, B: 237},
	"cornsilk":             {R: 255, G: 248, B: 220},
	"crimson":              {R: 220, G: 20, B: 60},
	"cyan":                 {R: 0, G: 255, B: 255},
	"darkblue":             {R: 0, G: 0, B: 139},
	"darkcyan":             {R: 0, G: 139, B: 139},
	"darkgoldenrod":        {R: 184, G: 134, B: 11},
	"darkgray":             {R: 169, G: 169, B: 169},
	"darkgreen":            {R: 0, G: 100, B: 0},
	"darkgrey":             {R: 169, G: 169, B: 169},
	"darkkhaki":            {R: 189, G: 183, B: 107},
	"darkmagenta":          {R: 139, G: 0, B: 139},
	"darkolivegreen":       {R: 85, G: 107, B: 47},
	"darkorange":           {R: 255, G: 140, B: 0},
	"darkorchid":           {R: 153, G: 50, B: 204},
	"darkred":              {R: 139, G: 0, B: 0},
	"darksalmon":           {R: 233, G: 150, B: 122},
	"darkseagreen":         {R: 143, G: 188, B: 143},
	"darkslateblue":        {R: 72, G: 61, B: 139},
	"darkslategray":        {R: 47, G: 79, B: 79},
	"darkslategrey":        {R: 47, G: 79, B: 79},
	"darkturquoise":        {R: 0, G: 206, B: 209},
	"darkviolet":           {R: 148, G: 0, B: 211},
	"deeppink":             {R: 255, G: 20, B: 147},
	"deepskyblue":          {R: 0, G: 191, B: 255},
	"dimgray":              {R: 105, G: 105, B: 105},
	"dimgrey":              {R: 105, G: 105, B: 105},
	"dodgerblue":           {R: 30, G: 144, B: 255},
	"firebrick":            {R: 178, G: 34, B: 34},
	"floralwhite":          {R: 255, G: 250, B: 240},
	"forestgreen":          {R: 34, G: 139, B: 34},
	"fuchsia":              {R: 255, G: 0, B: 255},
	"gainsboro":            {R: 220, G: 220, B: 220},
	"ghostwhite":           {R: 248, G: 248, B: 255},
	"gold":                 {R: 255, G: 215, B: 0},
	"goldenrod":            {R: 218, G: 165, B: 32},
	"gray":                 {R: 128, G: 128, B: 128},
	"green":                {R: 0, G: 128, B: 0},
	"greenyellow":          {R: 173, G: 255, B: 47},
	"grey":                 {R: 128, G: 128, B: 128},
	"honeydew":             {R: 240, G: 255, B: 240},
	"hotpink":              {R: 255, G: 105, B: 180},
	"indianred":            {R: 205, G: 92, B: 92},
	"indigo":               {R: 75, G: 0, B: 130},
	"ivory":                {R: 255, G: 255, B: 240},
	"khaki":                {R: 240, G: 230, B: 140},
	"lavender":             {R: 230, G: 230, B: 250},
	"lavenderblush":        {R: 255, G: 240, B: 245},
	"lawngreen":            {R: 124, G: 252, B: 0},
	"lemonchiffon":         {R: 255, G: 250, B: 205},
	"lightblue":            {R: 173, G: 216, B: 230},
	"lightcoral":           {R: 240, G: 128, B: 128},
	"lightcyan":            {R: 224, G: 255, B: 255},
	"lightgoldenrodyellow": {R: 250, G: 250, B: 210},
	"lightgray":            {R: 211, G: 211, B: 211},
	"lightgreen":           {R: 144, G: 238, B: 144},
	"lightgrey":            {R: 211, G: 211, B: 211},
	"lightpink":            {R: 255, G: 182, B: 193},
	"lightsalmon":          {R: 255, G: 160, B: 122},
	"lightseagreen":        {R: 32, G: 178, B: 170},
	"lightskyblue":         {R: 135, G: 206, B: 250},
	"lightslategray":       {R: 119, G: 136, B: 153},
	"lightslategrey":       {R: 119, G: 136, B: 153},
	"lightsteelblue":       {R: 176, G: 196, B: 222},
	"lightyellow":          {R: 255, G: 255, B: 224},
	"lime":                 {R: 0, G: 255, B: 0},
	"limegreen":            {R: 50, G: 205, B: 50},
	"linen":                {R: 250, G: 240, B: 230},
	"magenta":              {R: 255, G: 0, B: 255},
	"maroon":               {R: 128, G: 0, B: 0},
	"mediumaquamarine":     {R: 102, G: 205, B: 170},
	"mediumblue":           {R: 0, G: 0, B: 205},
	"mediumorchid":         {R: 186, G: 85, B: 211},
	"mediumpurple":         {R: 147, G: 112, B: 219},
	"mediumseagreen":       {R: 60, G: 179, B: 113},
	"mediumslateblue":      {R: 123, G: 104, B: 238},
	"mediumspringgreen":    {R: 0, G: 250, B: 154},
	"mediumturquoise":      {R: 72, G: 209, B: 204},
	"mediumvioletred":      {R: 199, G: 21, B: 133},
	"midnightblue":         {R: 25, G: 25, B: 112},
	"mintcream":            {R: 245, G: 255, B: 250},
	"mistyrose":            {R: 255, G: 228, B: 225},
	"moccasin":             {R: 255, G: 228, B: 181},
	"navajowhite":          {R: 255, G: 222, B: 173},
	"navy":                 {R: 0, G: 0, B: 128},
	"navyblue":             {R: 0, G: 0, B: 128},
	"oldlace":              {R: 253, G: 245, B: 230},
	"olive":                {R: 128, G: 128, B: 0},
	"olivedrab":            {R: 107, G: 142, B: 35},
	"orange":               {R: 255, G: 165, B: 0},
	"orangered":            {R: 255, G: 69, B: 0},
	"orchid":               {R: 218, G: 112, B: 214},
	"palegoldenrod":        {R: 238, G: 232, B: 170},
	"palegreen":            {R: 152, G: 251, B: 152},
	"paleturquoise":        {R: 175, G: 238, B: 238},
	"palevioletred":        {R: 219, G: 112, B: 147},
	"papayawhip":           {R: 255, G: 239, B: 213},
	"peachpuff":            {R: 255, G: 218, B: 185},
	"peru":                 {R: 205, G: 133, B: 63},
	"pink":                 {R: 255, G: 192, B: 203},
	"plum":                 {R: 221, G: 160, B: 221},
	"powderblue":           {R: 176, G: 224, B: 230},
	"purple":               {R: 128, G: 0, B: 128},
	"red":                  {R: 255, G: 0, B: 0},
	"rosybrown":            {R: 188, G: 143, B: 143},
	"royalblue":            {R: 65, G: 105, B: 225},
	"saddlebrown":          {R: 139, G: 69, B: 19},
	"salmon":               {R: 250, G: 128, B: 114},
	"sandybrown":           {R: 244, G: 164, B: 96},
	"seagreen":             {R: 46, G: 139, B: 87},
	"seashell":             {R: 255, G: 245, B: 238},
	"sienna":               {R: 160, G: 82, B: 45},
	"silver":               {R: 192, G: 192, B: 192},
	"skyblue":              {R: 135, G: 206, B: 235},
	"slateblue":            {R: 106, G: 90, B: 205},
	"slategray":            {R: 112, G: 128, B: 144},
	"slategrey":            {R: 112, G: 128, B: 144},
	"snow":                 {R: 255, G: 250, B: 250},
	"springgreen":          {R: 0, G: 255, B: 127},
	"steelblue":            {R: 70, G: 130, B: 180},
	"tan":                  {R: 210, G: 180, B: 140},
	"teal":                 {R: 0, G: 128, B: 128},
	"thistle":              {R: 216, G: 191, B: 216},
	"tomato":               {R: 255, G: 99, B: 71},
	"turquoise":            {R: 64, G: 224, B: 208},
	"violet":               {R: 238, G: 130, B: 238},
	"wheat":                {R: 245, G: 222, B: 179},
	"white":                {R: 255, G: 255, B: 255},
	"whitesmoke":           {R: 245, G: 245, B: 245},
	"yellow":               {R: 255, G: 255, B: 0},
	"yellowgreen":          {R: 154, G: 205, B: 50},
}

// NameToRGB resolves a named color, ignoring case and spaces.
func NameToRGB(name string) (common.RGB, error) {
	rgb, ok := namedColors[strings.Replace(strings.ToLower(name), " ", "", -1)]
	if !ok {
		return common.RGB{}, &ErrUnknownColorName{Name: name}
	}

	return rgb, nil
}
