package ui

// HUDHeight is the pixel height of the status strip below the grid.
const HUDHeight = 18
