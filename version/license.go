/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package version

var licenseNames = map[License]string{
	License_MIT:          "MIT License",
	License_Apache_v2:     "Apache License 2.0",
	License_GNU_GPL_v3:    "GNU GENERAL PUBLIC LICENSE Version 3",
	License_GNU_LGPL_v3:   "GNU LESSER GENERAL PUBLIC LICENSE Version 3",
	License_BSD_3_Clause:  "BSD 3-Clause License",
}

var licenseBoiler = map[License]string{
	License_MIT: "Permission is hereby granted, free of charge, to any person obtaining a copy " +
		"of this software and associated documentation files, to deal in the Software " +
		"without restriction, including without limitation the rights to use, copy, modify, " +
		"merge, publish, distribute, sublicense, and/or sell copies of the Software.",
	License_Apache_v2: "Licensed under the Apache License, Version 2.0 (the \"License\"); " +
		"you may not use this file except in compliance with the License.",
	License_GNU_GPL_v3: "This program is free software: you can redistribute it and/or modify " +
		"it under the terms of the GNU GENERAL PUBLIC LICENSE as published by the Free Software Foundation.",
	License_GNU_LGPL_v3: "This program is free software: you can redistribute it and/or modify " +
		"it under the terms of the GNU LESSER GENERAL PUBLIC LICENSE as published by the Free Software Foundation.",
	License_BSD_3_Clause: "Redistribution and use in source and binary forms, with or without " +
		"modification, are permitted provided that the conditions of the BSD 3-Clause License are met.",
}

var licenseLegal = map[License]string{
	License_MIT:          "THE SOFTWARE IS PROVIDED \"AS IS\", WITHOUT WARRANTY OF ANY KIND.",
	License_Apache_v2:     "Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an \"AS IS\" BASIS.",
	License_GNU_GPL_v3:    "This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY.",
	License_GNU_LGPL_v3:   "This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY.",
	License_BSD_3_Clause:  "THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS \"AS IS\" AND ANY EXPRESS OR IMPLIED WARRANTIES ARE DISCLAIMED.",
}

func (l License) name() string {
	if n, ok := licenseNames[l]; ok {
		return n
	}
	return licenseNames[License_MIT]
}

func (l License) boiler() string {
	if n, ok := licenseBoiler[l]; ok {
		return n
	}
	return licenseBoiler[License_MIT]
}

func (l License) legal() string {
	if n, ok := licenseLegal[l]; ok {
		return n
	}
	return licenseLegal[License_MIT]
}
