/*
Package parser extracts the pixel grid from a Piskel C export.

An export declares the frames as a nested brace literal:

	static const uint32_t new_piskel_data[1][4] = {
	{
	0xff808080, 0x00000000,
	0xffffffff, 0xff808080
	}
	};

The grid starts after the first "{\n{\n" and ends at the next "}". Each line is
a row and each comma separated token a cell. Nothing here interprets the codes;
see package palette for that.
*/
package parser
