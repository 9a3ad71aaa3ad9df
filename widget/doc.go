// Package widget feeds the home-screen widget of the mobile build.
//
// Bridge.Update writes widget_data.json, the file the widget provider reads,
// and then asks the platform to refresh the widget with an APPWIDGET_UPDATE
// broadcast. Only the android build has a widget; elsewhere Update does nothing.
package widget
