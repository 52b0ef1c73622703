package internal

// Version is the dailyread release version
const Version = "0.1.0"
