// This file is part of GBStopwatch.
//
// GBStopwatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GBStopwatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GBStopwatch.  If not, see <https://www.gnu.org/licenses/>.

package screen

// Cell positions of the fixed scene elements. The readout is the
// "MM:SS:HH" group; the three digit fields are drawn at their own columns
// every frame while the colons are drawn once as part of the scene.
const (
	TitleCol = 1
	TitleRow = 1
	RuleRow  = 2

	ReadoutRow    = 6
	MinutesCol    = 6
	SecondsCol    = 9
	HundredthsCol = 12

	// the cell immediately after the readout. cleared defensively every
	// frame: a fast-moving hundredths field can transiently leave a third
	// digit here
	OverflowCol = 14

	LowerRuleRow = 14
	ActionRow    = 15
	ResetRow     = 16
	LabelCol     = 5

	// column of the start/stop word within the action row ("A:   Start")
	ActionWordCol = 10
)
