package fatable

// Force actuator topology of the M1M3 mirror cell. One row per actuator:
// declaration index, actuator ID, X/Y/Z position (m, mirror coordinate
// system), actuator type, ILC subnet and bus address, orientation of the
// secondary axis, value-array indices for the X, Y, Z and secondary axes
// (NoIndex when the actuator has no load cell on that axis) and IDs of
// actuators in the surrounding ring.
var Table = []Record{
	{0, 101, 0.776782776, 0, -2.158743, SAA, 3, 1, "NA", NoIndex, NoIndex, 0, NoIndex, []int{102, 408, 407, 107, 108}},
	{1, 102, 1.44256799, 0, -2.158743, DAA, 1, 17, "+Y", NoIndex, 0, 1, 0, []int{103, 409, 408, 101, 108, 109}},
	{2, 103, 2.10837793, 0, -2.158743, DAA, 4, 17, "+Y", NoIndex, 1, 2, 1, []int{104, 410, 409, 102, 109, 110}},
	{3, 104, 2.77418799, 0, -2.158743, DAA, 2, 17, "+Y", NoIndex, 2, 3, 2, []int{105, 411, 410, 103, 110, 111}},
	{4, 105, 3.43999805, 0, -2.158743, DAA, 3, 17, "+Y", NoIndex, 3, 4, 3, []int{106, 412, 411, 104, 111, 112}},
	{5, 106, 3.96801294, 0, -2.158743, SAA, 2, 1, "NA", NoIndex, NoIndex, 5, NoIndex, []int{412, 105, 112}},
	{6, 107, 0.44386499, -0.57660498, -2.158743, SAA, 1, 1, "NA", NoIndex, NoIndex, 6, NoIndex, []int{108, 101, 113, 114}},
	{7, 108, 1.10967505, -0.57660498, -2.158743, DAA, 4, 18, "+Y", NoIndex, 4, 7, 4, []int{109, 102, 101, 107, 114, 115}},
	{8, 109, 1.77548499, -0.57660498, -2.158743, DAA, 2, 18, "+Y", NoIndex, 5, 8, 5, []int{110, 103, 102, 108, 115, 116}},
	{9, 110, 2.4412959, -0.57660498, -2.158743, DAA, 3, 18, "+Y", NoIndex, 6, 9, 6, []int{111, 104, 103, 109, 116, 117}},
	{10, 111, 3.10708008, -0.57660498, -2.158743, DAA, 1, 18, "+Y", NoIndex, 7, 10, 7, []int{112, 105, 104, 110, 117, 118}},
	{11, 112, 3.77289111, -0.57660498, -2.158743, DAA, 4, 19, "-X", 0, NoIndex, 11, 8, []int{106, 105, 111, 118, 125, 119}},
	{12, 113, 0, -1.15320996, -2.158743, DAA, 2, 19, "+Y", NoIndex, 8, 12, 9, []int{114, 107, 207, 214, 220, 120}},
	{13, 114, 0.776782776, -1.15320996, -2.158743, DAA, 3, 19, "+Y", NoIndex, 9, 13, 10, []int{115, 108, 107, 113, 120, 121}},
	{14, 115, 1.44256799, -1.15320996, -2.158743, DAA, 1, 19, "+Y", NoIndex, 10, 14, 11, []int{116, 109, 108, 114, 121, 122}},
	{15, 116, 2.10837793, -1.15320996, -2.158743, DAA, 4, 20, "+Y", NoIndex, 11, 15, 12, []int{117, 110, 109, 115, 122, 123}},
	{16, 117, 2.77418799, -1.15320996, -2.158743, DAA, 2, 20, "+Y", NoIndex, 12, 16, 13, []int{118, 111, 110, 116, 123, 124}},
	{17, 118, 3.43999805, -1.15320996, -2.158743, DAA, 3, 20, "+Y", NoIndex, 13, 17, 14, []int{119, 112, 111, 117, 124, 125}},
	{18, 119, 3.9005, -0.997687012, -2.158743, SAA, 2, 2, "NA", NoIndex, NoIndex, 18, NoIndex, []int{112, 111, 118, 125}},
	{19, 120, 0.44386499, -1.72981995, -2.158743, DAA, 1, 20, "+Y", NoIndex, 14, 19, 15, []int{121, 114, 113, 220, 126, 127}},
	{20, 121, 1.10967505, -1.72981995, -2.158743, DAA, 4, 21, "+Y", NoIndex, 15, 20, 16, []int{122, 115, 114, 120, 127, 128}},
	{21, 122, 1.77548499, -1.72981995, -2.158743, DAA, 2, 21, "+Y", NoIndex, 16, 21, 17, []int{123, 116, 115, 121, 128, 129}},
	{22, 123, 2.44127002, -1.72981995, -2.158743, DAA, 3, 21, "+Y", NoIndex, 17, 22, 18, []int{124, 117, 116, 122, 129, 130}},
	{23, 124, 3.10708008, -1.72981995, -2.158743, DAA, 1, 21, "+Y", NoIndex, 18, 23, 19, []int{125, 118, 117, 123, 130, 131}},
	{24, 125, 3.72445288, -1.51794995, -2.158743, SAA, 4, 1, "NA", NoIndex, NoIndex, 24, NoIndex, []int{119, 118, 124, 131}},
	{25, 126, 0, -2.30641992, -2.158743, DAA, 2, 22, "+Y", NoIndex, 19, 25, 20, []int{127, 120, 220, 227, 232, 132}},
	{26, 127, 0.776782776, -2.30641992, -2.158743, DAA, 3, 22, "+Y", NoIndex, 20, 26, 21, []int{128, 121, 120, 126, 132, 133}},
	{27, 128, 1.44256799, -2.30641992, -2.158743, DAA, 1, 22, "-X", 1, NoIndex, 27, 22, []int{129, 122, 121, 127, 133, 134}},
	{28, 129, 2.10837793, -2.30641992, -2.158743, DAA, 4, 22, "+Y", NoIndex, 21, 28, 23, []int{130, 123, 122, 128, 134, 135}},
	{29, 130, 2.77418799, -2.30641992, -2.158743, DAA, 2, 23, "+Y", NoIndex, 22, 29, 24, []int{131, 124, 123, 129, 135, 136}},
	{30, 131, 3.3879541, -2.16740991, -2.158743, SAA, 3, 2, "NA", NoIndex, NoIndex, 30, NoIndex, []int{125, 124, 130, 136}},
	{31, 132, 0.44386499, -2.88303003, -2.158743, DAA, 1, 23, "+Y", NoIndex, 23, 31, 25, []int{133, 127, 126, 232, 237, 137, 138}},
	{32, 133, 1.10967505, -2.88303003, -2.158743, DAA, 4, 23, "+Y", NoIndex, 24, 32, 26, []int{134, 128, 127, 132, 138, 139}},
	{33, 134, 1.77548499, -2.88303003, -2.158743, DAA, 2, 24, "+Y", NoIndex, 25, 33, 27, []int{135, 129, 128, 133, 139, 140}},
	{34, 135, 2.44127002, -2.88303003, -2.158743, DAA, 3, 23, "-X", 2, NoIndex, 34, 28, []int{136, 130, 129, 134, 140}},
	{35, 136, 2.93936401, -2.74517993, -2.158743, SAA, 4, 2, "NA", NoIndex, NoIndex, 35, NoIndex, []int{131, 130, 129, 135}},
	{36, 137, 0.221945206, -3.45962988, -2.158743, DAA, 2, 25, "+Y", NoIndex, 26, 36, 29, []int{138, 132, 232, 237, 241, 141}},
	{37, 138, 0.88772998, -3.45962988, -2.158743, DAA, 3, 24, "+Y", NoIndex, 27, 37, 30, []int{139, 133, 132, 137, 141, 142, 143}},
	{38, 139, 1.55354004, -3.26742993, -2.158743, SAA, 1, 2, "NA", NoIndex, NoIndex, 38, NoIndex, []int{134, 133, 138, 142, 143, 140}},
	{39, 140, 2.08973389, -3.43638989, -2.158743, SAA, 4, 3, "NA", NoIndex, NoIndex, 39, NoIndex, []int{135, 134, 139, 143}},
	{40, 141, 0.365734589, -4.00525, -2.158743, SAA, 1, 3, "NA", NoIndex, NoIndex, 40, NoIndex, []int{142, 138, 137, 237, 241}},
	{41, 142, 1.08508801, -3.87276001, -2.158743, SAA, 2, 3, "NA", NoIndex, NoIndex, 41, NoIndex, []int{143, 139, 138, 141}},
	{42, 143, 1.60401001, -3.69278003, -2.158743, SAA, 3, 3, "NA", NoIndex, NoIndex, 42, NoIndex, []int{140, 139, 134, 133, 138, 142}},
	{43, 207, -0.44386499, -0.57660498, -2.158743, SAA, 1, 4, "NA", NoIndex, NoIndex, 43, NoIndex, []int{107, 301, 208, 214, 113}},
	{44, 208, -1.10968005, -0.57660498, -2.158743, DAA, 4, 24, "+Y", NoIndex, 28, 44, 31, []int{207, 301, 302, 209, 215, 214}},
	{45, 209, -1.77548999, -0.57660498, -2.158743, DAA, 2, 26, "+Y", NoIndex, 29, 45, 32, []int{208, 302, 303, 210, 216, 215}},
	{46, 210, -2.44130005, -0.57660498, -2.158743, DAA, 3, 25, "+Y", NoIndex, 30, 46, 33, []int{209, 303, 304, 211, 217, 216}},
	{47, 211, -3.10708008, -0.57660498, -2.158743, DAA, 1, 24, "+Y", NoIndex, 31, 47, 34, []int{210, 304, 305, 212, 219, 218, 217}},
	{48, 212, -3.77288989, -0.57660498, -2.158743, DAA, 4, 25, "+X", 3, NoIndex, 48, 35, []int{211, 305, 306, 219, 225, 218}},
	{49, 214, -0.77678302, -1.15320996, -2.158743, DAA, 3, 26, "+Y", NoIndex, 32, 49, 36, []int{113, 207, 208, 215, 221, 220}},
	{50, 215, -1.44256995, -1.15320996, -2.158743, DAA, 1, 25, "+Y", NoIndex, 33, 50, 37, []int{214, 208, 209, 216, 222, 221}},
	{51, 216, -2.10837988, -1.15320996, -2.158743, DAA, 4, 26, "+Y", NoIndex, 34, 51, 38, []int{215, 209, 210, 217, 223, 222}},
	{52, 217, -2.77418994, -1.15320996, -2.158743, DAA, 2, 27, "+Y", NoIndex, 35, 52, 39, []int{216, 210, 211, 218, 224, 223}},
	{53, 218, -3.44, -1.15320996, -2.158743, DAA, 3, 27, "+Y", NoIndex, 36, 53, 40, []int{217, 211, 212, 219, 225, 224}},
	{54, 219, -3.9005, -0.997687012, -2.158743, SAA, 2, 4, "NA", NoIndex, NoIndex, 54, NoIndex, []int{211, 212, 225, 218}},
	{55, 220, -0.44386499, -1.72981995, -2.158743, DAA, 1, 26, "+Y", NoIndex, 37, 55, 41, []int{120, 113, 214, 221, 227, 126}},
	{56, 221, -1.10968005, -1.72981995, -2.158743, DAA, 4, 27, "+Y", NoIndex, 38, 56, 42, []int{220, 214, 215, 222, 228, 227}},
	{57, 222, -1.77548999, -1.72981995, -2.158743, DAA, 2, 28, "+Y", NoIndex, 39, 57, 43, []int{221, 215, 216, 223, 229, 228}},
	{58, 223, -2.44127002, -1.72981995, -2.158743, DAA, 3, 28, "+Y", NoIndex, 40, 58, 44, []int{222, 216, 217, 224, 230, 229}},
	{59, 224, -3.10708008, -1.72981995, -2.158743, DAA, 1, 27, "+Y", NoIndex, 41, 59, 45, []int{223, 217, 218, 225, 231, 230}},
	{60, 225, -3.72444995, -1.51794995, -2.158743, SAA, 4, 4, "NA", NoIndex, NoIndex, 60, NoIndex, []int{218, 219, 231, 224}},
	{61, 227, -0.77678302, -2.30641992, -2.158743, DAA, 3, 29, "+Y", NoIndex, 42, 61, 46, []int{126, 220, 221, 228, 233, 232}},
	{62, 228, -1.44256995, -2.30641992, -2.158743, DAA, 1, 28, "+X", 4, NoIndex, 62, 47, []int{227, 221, 222, 229, 234, 233}},
	{63, 229, -2.10837988, -2.30641992, -2.158743, DAA, 4, 28, "+Y", NoIndex, 43, 63, 48, []int{228, 222, 223, 230, 236, 235, 234}},
	{64, 230, -2.77418994, -2.30641992, -2.158743, DAA, 2, 29, "+Y", NoIndex, 44, 64, 49, []int{229, 223, 224, 231, 236, 235}},
	{65, 231, -3.38794995, -2.16740991, -2.158743, SAA, 3, 4, "NA", NoIndex, NoIndex, 65, NoIndex, []int{230, 224, 225, 236}},
	{66, 232, -0.44386499, -2.88303003, -2.158743, DAA, 1, 29, "+Y", NoIndex, 45, 66, 50, []int{132, 126, 227, 233, 238, 237, 137}},
	{67, 233, -1.10968005, -2.88303003, -2.158743, DAA, 4, 29, "+Y", NoIndex, 46, 67, 51, []int{232, 227, 228, 234, 239, 238}},
	{68, 234, -1.77548999, -2.88303003, -2.158743, DAA, 2, 30, "+Y", NoIndex, 47, 68, 52, []int{233, 228, 229, 235, 240, 243, 239}},
	{69, 235, -2.44127002, -2.88303003, -2.158743, DAA, 3, 30, "+X", 5, NoIndex, 69, 53, []int{234, 229, 230, 236, 240}},
	{70, 236, -2.93936011, -2.74517993, -2.158743, SAA, 4, 5, "NA", NoIndex, NoIndex, 70, NoIndex, []int{235, 229, 230, 231}},
	{71, 237, -0.221945007, -3.45962988, -2.158743, DAA, 2, 31, "+Y", NoIndex, 48, 71, 54, []int{137, 132, 232, 238, 241, 141}},
	{72, 238, -0.88772998, -3.45962988, -2.158743, DAA, 3, 31, "+Y", NoIndex, 49, 72, 55, []int{237, 232, 233, 239, 243, 242, 241}},
	{73, 239, -1.55354004, -3.26742993, -2.158743, SAA, 1, 5, "NA", NoIndex, NoIndex, 73, NoIndex, []int{233, 234, 240, 243, 242, 238}},
	{74, 240, -2.08972998, -3.43638989, -2.158743, SAA, 4, 6, "NA", NoIndex, NoIndex, 74, NoIndex, []int{239, 234, 235, 243}},
	{75, 241, -0.365734985, -4.00525, -2.158743, SAA, 1, 6, "NA", NoIndex, NoIndex, 75, NoIndex, []int{141, 137, 237, 238, 242}},
	{76, 242, -1.08508997, -3.87276001, -2.158743, SAA, 2, 5, "NA", NoIndex, NoIndex, 76, NoIndex, []int{241, 238, 239, 243}},
	{77, 243, -1.60401001, -3.69278003, -2.158743, SAA, 3, 5, "NA", NoIndex, NoIndex, 77, NoIndex, []int{238, 239, 234, 240, 242}},
	{78, 301, -0.77678302, 0, -2.158743, SAA, 3, 6, "NA", NoIndex, NoIndex, 78, NoIndex, []int{307, 308, 302, 208, 207}},
	{79, 302, -1.44256995, 0, -2.158743, DAA, 1, 30, "+Y", NoIndex, 50, 79, 56, []int{301, 308, 309, 303, 209, 208}},
	{80, 303, -2.10837988, 0, -2.158743, DAA, 4, 30, "+Y", NoIndex, 51, 80, 57, []int{302, 309, 310, 304, 210, 209}},
	{81, 304, -2.77418994, 0, -2.158743, DAA, 2, 32, "+Y", NoIndex, 52, 81, 58, []int{303, 310, 311, 305, 211, 210}},
	{82, 305, -3.44, 0, -2.158743, DAA, 3, 32, "+Y", NoIndex, 53, 82, 59, []int{304, 311, 312, 306, 212, 211}},
	{83, 306, -3.96801001, 0, -2.158743, SAA, 2, 6, "NA", NoIndex, NoIndex, 83, NoIndex, []int{305, 312, 212}},
	{84, 307, -0.44386499, 0.576605408, -2.158743, SAA, 1, 7, "NA", NoIndex, NoIndex, 84, NoIndex, []int{407, 313, 314, 308, 301}},
	{85, 308, -1.10968005, 0.576605408, -2.158743, DAA, 4, 31, "+Y", NoIndex, 54, 85, 60, []int{307, 314, 315, 309, 302, 301}},
	{86, 309, -1.77548999, 0.576605408, -2.158743, DAA, 2, 33, "+Y", NoIndex, 55, 86, 61, []int{308, 315, 316, 310, 303, 302}},
	{87, 310, -2.44130005, 0.576605408, -2.158743, DAA, 3, 33, "+Y", NoIndex, 56, 87, 62, []int{309, 316, 317, 311, 304, 303}},
	{88, 311, -3.10708008, 0.576605408, -2.158743, DAA, 1, 31, "-Y", NoIndex, 57, 88, 63, []int{310, 317, 318, 319, 312, 305, 304}},
	{89, 312, -3.77288989, 0.576605408, -2.158743, DAA, 4, 32, "+X", 6, NoIndex, 89, 64, []int{311, 318, 319, 306, 305, 325}},
	{90, 313, 0, 1.15321106, -2.158743, DAA, 2, 34, "+Y", NoIndex, 58, 90, 65, []int{414, 420, 320, 314, 307, 407}},
	{91, 314, -0.77678302, 1.15321106, -2.158743, DAA, 3, 34, "+Y", NoIndex, 59, 91, 66, []int{313, 320, 321, 315, 308, 307}},
	{92, 315, -1.44256995, 1.15321106, -2.158743, DAA, 1, 32, "+Y", NoIndex, 60, 92, 67, []int{314, 321, 322, 316, 309, 308}},
	{93, 316, -2.10837988, 1.15321106, -2.158743, DAA, 4, 33, "+Y", NoIndex, 61, 93, 68, []int{315, 322, 323, 317, 310, 309}},
	{94, 317, -2.77418994, 1.15321106, -2.158743, DAA, 2, 35, "+Y", NoIndex, 62, 94, 69, []int{316, 323, 324, 318, 311, 310}},
	{95, 318, -3.44, 1.15321106, -2.158743, DAA, 3, 35, "+Y", NoIndex, 63, 95, 70, []int{317, 324, 325, 319, 312, 311}},
	{96, 319, -3.9005, 0.997686584, -2.158743, SAA, 2, 7, "NA", NoIndex, NoIndex, 96, NoIndex, []int{318, 325, 312, 311}},
	{97, 320, -0.44386499, 1.72981604, -2.158743, DAA, 1, 33, "+Y", NoIndex, 64, 97, 71, []int{420, 326, 327, 321, 314, 313}},
	{98, 321, -1.10968005, 1.72981604, -2.158743, DAA, 4, 34, "+Y", NoIndex, 65, 98, 72, []int{320, 327, 328, 322, 315, 314}},
	{99, 322, -1.77548999, 1.72981604, -2.158743, DAA, 2, 36, "+Y", NoIndex, 66, 99, 73, []int{321, 328, 329, 323, 316, 315}},
	{100, 323, -2.44127002, 1.72981604, -2.158743, DAA, 3, 36, "+Y", NoIndex, 67, 100, 74, []int{322, 329, 330, 324, 317, 316}},
	{101, 324, -3.10708008, 1.72981604, -2.158743, DAA, 1, 34, "+Y", NoIndex, 68, 101, 75, []int{323, 330, 331, 325, 318, 317}},
	{102, 325, -3.72444995, 1.51795496, -2.158743, SAA, 4, 7, "NA", NoIndex, NoIndex, 102, NoIndex, []int{324, 331, 319, 318, 312}},
	{103, 326, 0, 2.30642212, -2.158743, DAA, 2, 37, "+Y", NoIndex, 69, 103, 76, []int{427, 432, 332, 327, 320, 420}},
	{104, 327, -0.77678302, 2.30642212, -2.158743, DAA, 3, 37, "+Y", NoIndex, 70, 104, 77, []int{326, 332, 333, 328, 321, 320}},
	{105, 328, -1.44256995, 2.30642212, -2.158743, DAA, 1, 35, "+X", 7, NoIndex, 105, 78, []int{327, 333, 334, 329, 322, 321}},
	{106, 329, -2.10837988, 2.30642212, -2.158743, DAA, 4, 35, "+Y", NoIndex, 71, 106, 79, []int{328, 334, 335, 330, 323, 322}},
	{107, 330, -2.77418994, 2.30642212, -2.158743, DAA, 2, 38, "+Y", NoIndex, 72, 107, 80, []int{329, 335, 336, 331, 324, 323}},
	{108, 331, -3.38794995, 2.16740698, -2.158743, SAA, 3, 7, "NA", NoIndex, NoIndex, 108, NoIndex, []int{330, 336, 325, 324}},
	{109, 332, -0.44386499, 2.8830271, -2.158743, DAA, 1, 36, "+Y", NoIndex, 73, 109, 81, []int{432, 437, 337, 338, 333, 327, 326}},
	{110, 333, -1.10968005, 2.8830271, -2.158743, DAA, 4, 36, "+Y", NoIndex, 74, 110, 82, []int{332, 338, 339, 334, 328, 327}},
	{111, 334, -1.77548999, 2.8830271, -2.158743, DAA, 2, 39, "-Y", NoIndex, 75, 111, 83, []int{333, 339, 343, 340, 335, 329, 328}},
	{112, 335, -2.44127002, 2.8830271, -2.158743, DAA, 3, 38, "+X", 8, NoIndex, 112, 84, []int{334, 340, 336, 330, 329}},
	{113, 336, -2.93936011, 2.74518091, -2.158743, SAA, 4, 8, "NA", NoIndex, NoIndex, 113, NoIndex, []int{335, 331, 330, 329}},
	{114, 337, -0.221945007, 3.45963208, -2.158743, DAA, 2, 40, "+Y", NoIndex, 76, 114, 85, []int{437, 441, 341, 342, 338, 332, 432}},
	{115, 338, -0.88772998, 3.45963208, -2.158743, DAA, 3, 39, "+Y", NoIndex, 77, 115, 86, []int{337, 341, 342, 343, 339, 333, 332}},
	{116, 339, -1.55354004, 3.26743091, -2.158743, SAA, 1, 8, "NA", NoIndex, NoIndex, 116, NoIndex, []int{338, 342, 343, 340, 335, 334, 333}},
	{117, 340, -2.08972998, 3.43639111, -2.158743, SAA, 4, 9, "NA", NoIndex, NoIndex, 117, NoIndex, []int{343, 335, 334, 339}},
	{118, 341, -0.365734985, 4.00525, -2.158743, SAA, 1, 9, "NA", NoIndex, NoIndex, 118, NoIndex, []int{441, 342, 338, 337, 437}},
	{119, 342, -1.08508997, 3.87276294, -2.158743, SAA, 2, 8, "NA", NoIndex, NoIndex, 119, NoIndex, []int{341, 343, 339, 333, 338, 337}},
	{120, 343, -1.60401001, 3.69277905, -2.158743, SAA, 3, 8, "NA", NoIndex, NoIndex, 120, NoIndex, []int{342, 340, 339, 334, 333, 338}},
	{121, 407, 0.44386499, 0.576605408, -2.158743, SAA, 1, 10, "NA", NoIndex, NoIndex, 121, NoIndex, []int{408, 414, 313, 307, 101}},
	{122, 408, 1.10967505, 0.576605408, -2.158743, DAA, 4, 37, "+Y", NoIndex, 78, 122, 87, []int{409, 415, 414, 407, 101, 102}},
	{123, 409, 1.77548499, 0.576605408, -2.158743, DAA, 2, 41, "+Y", NoIndex, 79, 123, 88, []int{410, 416, 415, 408, 102, 103}},
	{124, 410, 2.4412959, 0.576605408, -2.158743, DAA, 3, 40, "+Y", NoIndex, 80, 124, 89, []int{411, 417, 416, 409, 103, 104}},
	{125, 411, 3.10708008, 0.576605408, -2.158743, DAA, 1, 37, "-Y", NoIndex, 81, 125, 90, []int{412, 419, 418, 417, 410, 104, 105}},
	{126, 412, 3.77289111, 0.576605408, -2.158743, DAA, 4, 38, "-X", 9, NoIndex, 126, 91, []int{419, 425, 418, 411, 105, 106}},
	{127, 414, 0.776782776, 1.15321106, -2.158743, DAA, 3, 41, "+Y", NoIndex, 82, 127, 92, []int{415, 421, 420, 313, 407, 408}},
	{128, 415, 1.44256799, 1.15321106, -2.158743, DAA, 1, 38, "+Y", NoIndex, 83, 128, 93, []int{416, 422, 421, 414, 408, 409}},
	{129, 416, 2.10837793, 1.15321106, -2.158743, DAA, 4, 39, "+Y", NoIndex, 84, 129, 94, []int{417, 423, 422, 415, 409, 410}},
	{130, 417, 2.77418799, 1.15321106, -2.158743, DAA, 2, 42, "+Y", NoIndex, 85, 130, 95, []int{418, 424, 423, 416, 410, 411}},
	{131, 418, 3.43999805, 1.15321106, -2.158743, DAA, 3, 42, "+Y", NoIndex, 86, 131, 96, []int{419, 425, 424, 417, 411, 412}},
	{132, 419, 3.9005, 0.997686584, -2.158743, SAA, 2, 9, "NA", NoIndex, NoIndex, 132, NoIndex, []int{425, 418, 411, 412}},
	{133, 420, 0.44386499, 1.72981604, -2.158743, DAA, 1, 39, "+Y", NoIndex, 87, 133, 97, []int{421, 427, 326, 320, 313, 414}},
	{134, 421, 1.10967505, 1.72981604, -2.158743, DAA, 4, 40, "+Y", NoIndex, 88, 134, 98, []int{422, 428, 427, 420, 414, 415}},
	{135, 422, 1.77548499, 1.72981604, -2.158743, DAA, 2, 43, "+Y", NoIndex, 89, 135, 99, []int{423, 429, 428, 421, 415, 416}},
	{136, 423, 2.44127002, 1.72981604, -2.158743, DAA, 3, 43, "+Y", NoIndex, 90, 136, 100, []int{424, 430, 429, 422, 416, 417}},
	{137, 424, 3.10708008, 1.72981604, -2.158743, DAA, 1, 40, "+Y", NoIndex, 91, 137, 101, []int{431, 430, 423, 417, 418, 425}},
	{138, 425, 3.72445288, 1.51795496, -2.158743, SAA, 4, 10, "NA", NoIndex, NoIndex, 138, NoIndex, []int{431, 424, 418, 412, 419}},
	{139, 427, 0.776782776, 2.30642212, -2.158743, DAA, 3, 44, "+Y", NoIndex, 92, 139, 102, []int{428, 433, 432, 326, 420, 421}},
	{140, 428, 1.44256799, 2.30642212, -2.158743, DAA, 1, 41, "-X", 10, NoIndex, 140, 103, []int{429, 434, 433, 427, 421, 422}},
	{141, 429, 2.10837793, 2.30642212, -2.158743, DAA, 4, 41, "+Y", NoIndex, 93, 141, 104, []int{430, 436, 435, 434, 428, 422, 423}},
	{142, 430, 2.77418799, 2.30642212, -2.158743, DAA, 2, 44, "+Y", NoIndex, 94, 142, 105, []int{431, 436, 435, 429, 423, 424}},
	{143, 431, 3.3879541, 2.16740698, -2.158743, SAA, 3, 9, "NA", NoIndex, NoIndex, 143, NoIndex, []int{436, 430, 424, 425}},
	{144, 432, 0.44386499, 2.8830271, -2.158743, DAA, 1, 42, "+Y", NoIndex, 95, 144, 106, []int{433, 438, 437, 337, 332, 326, 427}},
	{145, 433, 1.10967505, 2.8830271, -2.158743, DAA, 4, 42, "+Y", NoIndex, 96, 145, 107, []int{434, 439, 438, 432, 427, 428}},
	{146, 434, 1.77548499, 2.8830271, -2.158743, DAA, 2, 45, "-Y", NoIndex, 97, 146, 108, []int{435, 440, 439, 433, 428, 429}},
	{147, 435, 2.44127002, 2.8830271, -2.158743, DAA, 3, 45, "-X", 11, NoIndex, 147, 109, []int{440, 434, 429, 430, 436}},
	{148, 436, 2.93936401, 2.74518091, -2.158743, SAA, 4, 11, "NA", NoIndex, NoIndex, 148, NoIndex, []int{435, 429, 430, 431}},
	{149, 437, 0.221945206, 3.45963208, -2.158743, DAA, 2, 46, "+Y", NoIndex, 98, 149, 110, []int{438, 441, 341, 337, 332, 432}},
	{150, 438, 0.88772998, 3.45963208, -2.158743, DAA, 3, 46, "+Y", NoIndex, 99, 150, 111, []int{439, 443, 442, 441, 437, 432, 433}},
	{151, 439, 1.55354004, 3.26743091, -2.158743, SAA, 1, 11, "NA", NoIndex, NoIndex, 151, NoIndex, []int{440, 443, 442, 438, 433, 434}},
	{152, 440, 2.08973389, 3.43639111, -2.158743, SAA, 4, 12, "NA", NoIndex, NoIndex, 152, NoIndex, []int{443, 439, 434, 435}},
	{153, 441, 0.365734589, 4.00525, -2.158743, SAA, 1, 12, "NA", NoIndex, NoIndex, 153, NoIndex, []int{442, 341, 337, 437, 438}},
	{154, 442, 1.08508801, 3.87276294, -2.158743, SAA, 2, 10, "NA", NoIndex, NoIndex, 154, NoIndex, []int{441, 437, 438, 439, 443}},
	{155, 443, 1.60401001, 3.69277905, -2.158743, SAA, 3, 10, "NA", NoIndex, NoIndex, 155, NoIndex, []int{442, 438, 439, 434, 440}},
}
